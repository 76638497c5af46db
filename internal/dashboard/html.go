package dashboard

import (
	"html/template"
	"strings"

	"github.com/shivaraj-arch/court-scraper/internal/store"
)

type pageData struct {
	LatestDate       string
	TrackingStart    string
	Scheduled        int
	Heard            int
	NotReached       int
	Efficiency       float64
	Monthly          *MonthlyStats
	WeeklyDates      []string
	WeeklyEfficiency []float64
	Judges           []store.JudgeStat
	TopJudges        []TopJudge
}

// renderPage renders the dashboard HTML.
func renderPage(data pageData) (string, error) {
	tmpl := `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Karnataka High Court - Daily Statistics</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }

        .container {
            max-width: 1400px;
            margin: 0 auto;
        }

        .header {
            background: white;
            padding: 30px;
            border-radius: 15px;
            margin-bottom: 30px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.2);
        }

        .header h1 {
            color: #2d3748;
            font-size: 2.5rem;
            margin-bottom: 10px;
        }

        .header .subtitle {
            color: #718096;
            font-size: 1.1rem;
        }

        .disclaimer {
            background: #fff3cd;
            border-left: 4px solid #ffc107;
            padding: 15px;
            margin: 20px 0;
            border-radius: 5px;
        }

        .disclaimer strong {
            color: #856404;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }

        .stat-card {
            background: white;
            padding: 25px;
            border-radius: 15px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
            transition: transform 0.3s ease;
        }

        .stat-card:hover {
            transform: translateY(-5px);
        }

        .stat-card .label {
            color: #718096;
            font-size: 0.9rem;
            text-transform: uppercase;
            letter-spacing: 1px;
            margin-bottom: 10px;
        }

        .stat-card .value {
            color: #2d3748;
            font-size: 2.5rem;
            font-weight: bold;
            margin-bottom: 5px;
        }

        .chart-container {
            background: white;
            padding: 30px;
            border-radius: 15px;
            margin-bottom: 30px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
        }

        .chart-container h2 {
            color: #2d3748;
            margin-bottom: 20px;
        }

        .judge-table {
            background: white;
            padding: 30px;
            border-radius: 15px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
            overflow-x: auto;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th {
            background: #667eea;
            color: white;
            padding: 15px;
            text-align: left;
            font-weight: 600;
        }

        td {
            padding: 15px;
            border-bottom: 1px solid #e2e8f0;
        }

        tr:hover {
            background: #f7fafc;
        }

        .efficiency-bar {
            height: 8px;
            background: #e2e8f0;
            border-radius: 4px;
            overflow: hidden;
        }

        .efficiency-fill {
            height: 100%;
            background: linear-gradient(90deg, #48bb78, #38a169);
            transition: width 0.3s ease;
        }

        .footer {
            text-align: center;
            color: white;
            margin-top: 30px;
            padding: 20px;
        }

        .badge {
            display: inline-block;
            padding: 5px 10px;
            border-radius: 20px;
            font-size: 0.85rem;
            font-weight: 600;
        }

        .badge-success {
            background: #c6f6d5;
            color: #22543d;
        }

        .badge-warning {
            background: #feebc8;
            color: #7c2d12;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🏛️ Karnataka High Court Statistics</h1>
            <p class="subtitle">Daily Performance Dashboard - Bengaluru</p>
            <p class="subtitle">Last Updated: {{.LatestDate}}</p>

            <div class="disclaimer">
                <strong>📊 Data Tracking Notice:</strong>
                Statistics are tracked from <strong>{{.TrackingStart}}</strong> onwards.
                Case history shows listing dates from when tracking began, not original filing dates.
                Historical cases filed before 2026 will show first listing date as when we first observed them in our system.
            </div>
        </div>

        <div class="stats-grid">
            <div class="stat-card">
                <div class="label">Cases Scheduled Today</div>
                <div class="value">{{.Scheduled}}</div>
            </div>

            <div class="stat-card">
                <div class="label">Cases Heard Today</div>
                <div class="value">{{.Heard}}</div>
            </div>

            <div class="stat-card">
                <div class="label">Cases Not Reached</div>
                <div class="value">{{.NotReached}}</div>
            </div>

            <div class="stat-card">
                <div class="label">Overall Efficiency</div>
                <div class="value">{{printf "%.1f" .Efficiency}}%</div>
                <div class="efficiency-bar">
                    <div class="efficiency-fill" style="width: {{.Efficiency}}%"></div>
                </div>
            </div>
        </div>

        {{if .Monthly}}
        <div class="chart-container">
            <h2>📅 {{.Monthly.Month}} Summary</h2>
            <div class="stats-grid">
                <div class="stat-card">
                    <div class="label">Working Days</div>
                    <div class="value">{{.Monthly.Days}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Total Scheduled</div>
                    <div class="value">{{.Monthly.TotalScheduled}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Total Heard</div>
                    <div class="value">{{.Monthly.TotalHeard}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Month Efficiency</div>
                    <div class="value">{{printf "%.1f" .Monthly.Efficiency}}%</div>
                </div>
            </div>
        </div>
        {{end}}

        <div class="chart-container">
            <h2>📈 Weekly Efficiency Trend</h2>
            <canvas id="weeklyChart"></canvas>
        </div>

        <div class="judge-table">
            <h2>👨‍⚖️ Today's Judge Performance</h2>
            <table>
                <thead>
                    <tr>
                        <th>Judge Name</th>
                        <th>Court Hall</th>
                        <th>Scheduled</th>
                        <th>Heard</th>
                        <th>Not Reached</th>
                        <th>Efficiency</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .Judges}}
                    <tr>
                        <td><strong>{{.JudgeName}}</strong></td>
                        <td>{{.CourtHall}}</td>
                        <td>{{.CasesScheduled}}</td>
                        <td>{{.CasesHeard}}</td>
                        <td>{{.CasesNotReached}}</td>
                        <td>
                            <span class="badge {{if ge .HearingEfficiency 70.0}}badge-success{{else}}badge-warning{{end}}">{{printf "%.1f" .HearingEfficiency}}%</span>
                            <div class="efficiency-bar" style="margin-top: 5px;">
                                <div class="efficiency-fill" style="width: {{.HearingEfficiency}}%"></div>
                            </div>
                        </td>
                    </tr>
                    {{else}}
                    <tr><td colspan="6" style="text-align: center;">No data available</td></tr>
                    {{end}}
                </tbody>
            </table>
        </div>

        {{if .TopJudges}}
        <div class="judge-table" style="margin-top: 30px;">
            <h2>🏆 Top Performing Judges This Month</h2>
            <table>
                <thead>
                    <tr>
                        <th>Rank</th>
                        <th>Judge Name</th>
                        <th>Total Scheduled</th>
                        <th>Total Heard</th>
                        <th>Efficiency</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .TopJudges}}
                    <tr>
                        <td>{{.Rank}}</td>
                        <td><strong>{{.JudgeName}}</strong></td>
                        <td>{{.TotalScheduled}}</td>
                        <td>{{.TotalHeard}}</td>
                        <td>
                            <span class="badge badge-success">{{printf "%.1f" .Efficiency}}%</span>
                        </td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>
        {{end}}

        <div class="footer">
            <p>Generated using Karnataka High Court Analytics Data</p>
            <p>Data sourced from official cause lists,case types and display board(30 sec frequency)</p>
        </div>
    </div>

    <script>
        // Weekly trend chart
        const ctx = document.getElementById('weeklyChart').getContext('2d');
        new Chart(ctx, {
            type: 'line',
            data: {
                labels: {{.WeeklyDates}},
                datasets: [{
                    label: 'Efficiency %',
                    data: {{.WeeklyEfficiency}},
                    borderColor: '#667eea',
                    backgroundColor: 'rgba(102, 126, 234, 0.1)',
                    tension: 0.4,
                    fill: true
                }]
            },
            options: {
                responsive: true,
                plugins: {
                    legend: {
                        display: false
                    }
                },
                scales: {
                    y: {
                        beginAtZero: true,
                        max: 100,
                        ticks: {
                            callback: function(value) {
                                return value + '%';
                            }
                        }
                    }
                }
            }
        });
    </script>
</body>
</html>`

	t, err := template.New("dashboard").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
