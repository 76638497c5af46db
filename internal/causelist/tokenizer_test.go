package causelist

import (
	"reflect"
	"testing"
)

func testTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	tax := NewTaxonomy([]string{"WP", "WA", "MFA.CROB", "MFA", "CCC"})
	return NewTokenizer(tax, DefaultRules())
}

func TestTokenize_HallMarkers(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantHall string
		wantNone bool
	}{
		{name: "colon form", text: "COURT HALL NO : 14", wantHall: "14"},
		{name: "dotted with alphanumeric id", text: "COURT HALL NO.: 2A", wantHall: "2A"},
		{name: "no colon", text: "COURT HALL NO 7", wantHall: "7"},
		{name: "mixed case heading", text: "Court Hall No : 3", wantHall: "3"},
		{name: "identifier wrapped past the colon", text: "COURT HALL NO :\n14 is printed below", wantHall: ""},
		{name: "bare phrase without identifier", text: "COURT HALL NO", wantNone: true},
	}

	tok := testTokenizer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if tt.wantNone {
				if len(got) != 0 {
					t.Fatalf("tokens = %+v, want none", got)
				}
				return
			}
			if len(got) != 1 || got[0].Kind != TokenHall {
				t.Fatalf("tokens = %+v, want one hall token", got)
			}
			if got[0].Hall != tt.wantHall {
				t.Errorf("hall = %q, want %q", got[0].Hall, tt.wantHall)
			}
		})
	}
}

func TestTokenize_ListMarkers(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"CAUSE LIST NO. 3", 3},
		{"CAUSE LIST NO : 1", 1},
		{"cause list no:12", 12},
	}

	tok := testTokenizer(t)
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if len(got) != 1 || got[0].Kind != TokenList {
				t.Fatalf("tokens = %+v, want one list token", got)
			}
			if got[0].List != tt.want {
				t.Errorf("list = %d, want %d", got[0].List, tt.want)
			}
		})
	}
}

func TestTokenize_JudgeHeading(t *testing.T) {
	text := "BEFORE THE HON'BLE MR. JUSTICE JOHN DOE\nTO BE HEARD AT 10:30 AM"

	got := testTokenizer(t).Tokenize(text)
	if len(got) != 1 || got[0].Kind != TokenJudge {
		t.Fatalf("tokens = %+v, want one judge token", got)
	}
	want := "THE HON'BLE MR. JUSTICE JOHN DOE"
	if got[0].Judge != want {
		t.Errorf("judge = %q, want %q", got[0].Judge, want)
	}
}

func TestTokenize_ChiefJusticeBench(t *testing.T) {
	text := "BEFORE THE HON'BLE THE CHIEF JUSTICE AND THE HON'BLE MRS. JUSTICE JANE ROE\nCAUSE LIST NO : 1"

	got := testTokenizer(t).Tokenize(text)
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(got), got)
	}
	if got[0].Kind != TokenJudge {
		t.Fatalf("first token kind = %v, want judge", got[0].Kind)
	}
	wantJudge := "THE HON'BLE THE CHIEF JUSTICE AND THE HON'BLE MRS. JUSTICE JANE ROE"
	if got[0].Judge != wantJudge {
		t.Errorf("judge = %q, want %q", got[0].Judge, wantJudge)
	}
	if got[1].Kind != TokenList || got[1].List != 1 {
		t.Errorf("second token = %+v, want list 1", got[1])
	}
}

func TestTokenize_CaseLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []*CaseLine
	}{
		{
			name: "single entry with detail text",
			text: "1 WP 123/2024 SOME DETAIL PET: ABC DEF RES: XYZ CORP",
			want: []*CaseLine{
				{Serial: 1, RawCaseID: "WP 123/2024 SOME DETAIL", Petitioner: "ABC DEF", Respondent: "XYZ CORP"},
			},
		},
		{
			name: "respondent wraps until the next entry",
			text: "1 WP 1/2024 PET: A RES: LINE ONE\nLINE TWO\n2 WA 2/2024 PET: C RES: D",
			want: []*CaseLine{
				{Serial: 1, RawCaseID: "WP 1/2024", Petitioner: "A", Respondent: "LINE ONE LINE TWO"},
				{Serial: 2, RawCaseID: "WA 2/2024", Petitioner: "C", Respondent: "D"},
			},
		},
		{
			name: "entry without a serial",
			text: "WP 9/2024 PET: X RES: Y",
			want: []*CaseLine{
				{Serial: 0, RawCaseID: "WP 9/2024", Petitioner: "X", Respondent: "Y"},
			},
		},
		{
			name: "dotted code resolves to its longest form",
			text: "3 MFA.CROB 45/2024 PET: A RES: B",
			want: []*CaseLine{
				{Serial: 3, RawCaseID: "MFA.CROB 45/2024", Petitioner: "A", Respondent: "B"},
			},
		},
		{
			name: "entry missing labels is skipped",
			text: "1 WP 5/2024 NO LABELS HERE\n2 WA 6/2024 PET: P RES: R",
			want: []*CaseLine{
				{Serial: 2, RawCaseID: "WA 6/2024", Petitioner: "P", Respondent: "R"},
			},
		},
		{
			name: "section heading bounds the respondent",
			text: "1 WP 1/2024 PET: A RES: REAL TEXT\nFOR ORDERS\nstray text",
			want: []*CaseLine{
				{Serial: 1, RawCaseID: "WP 1/2024", Petitioner: "A", Respondent: "REAL TEXT"},
			},
		},
	}

	tok := testTokenizer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []*CaseLine
			for _, token := range tok.Tokenize(tt.text) {
				if token.Kind == TokenCase {
					got = append(got, token.Case)
				}
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("cases = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTokenize_EmbeddedHallMarker(t *testing.T) {
	text := "1 WP 1/2024 PET: A RES: FIRST PART\nCOURT HALL NO : 9\nSECOND PART"

	got := testTokenizer(t).Tokenize(text)
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(got), got)
	}
	if got[0].Kind != TokenCase {
		t.Fatalf("first token kind = %v, want case", got[0].Kind)
	}
	if got[0].Case.Respondent != "FIRST PART SECOND PART" {
		t.Errorf("respondent = %q, want marker stripped and halves joined", got[0].Case.Respondent)
	}
	if got[1].Kind != TokenHall || got[1].Hall != "9" {
		t.Errorf("second token = %+v, want hall 9 after the case", got[1])
	}
}

func TestTokenize_UnknownCodeRejected(t *testing.T) {
	tok := NewTokenizer(NewTaxonomy([]string{"MFA"}), DefaultRules())
	got := tok.Tokenize("7 MFA.CROB 123/2024 PET: A RES: B")
	if len(got) != 0 {
		t.Errorf("tokens = %+v, want none: MFA.CROB is not followed by a case number once MFA is consumed", got)
	}
}

func TestTokenize_DocumentOrder(t *testing.T) {
	text := "COURT HALL NO : 5\n" +
		"BEFORE THE HON'BLE MR. JUSTICE SAM LEE\n" +
		"CAUSE LIST NO : 2\n" +
		"1 WP 10/2024 PET: A RES: B\n" +
		"2 CCC 11/2024 PET: C RES: D"

	got := testTokenizer(t).Tokenize(text)
	kinds := make([]TokenKind, len(got))
	for i, token := range got {
		kinds[i] = token.Kind
	}
	want := []TokenKind{TokenHall, TokenJudge, TokenList, TokenCase, TokenCase}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("token kinds = %v, want %v", kinds, want)
	}
	if got[0].Hall != "5" || got[2].List != 2 {
		t.Errorf("context tokens = %+v", got)
	}
}
