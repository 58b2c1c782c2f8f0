package report

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var pageTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Test Run {{.RunID}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
.pass { color: #15803d; }
.fail { color: #b91c1c; font-weight: bold; }
.skip { color: #a16207; }
pre { background: #f5f5f5; padding: 0.5rem; overflow-x: auto; }
</style>
</head>
<body>
<h1>Run {{.RunID}}</h1>
<p>{{.Timestamp}} &middot; browser: {{.Browser}} &middot; category: {{.Category}}</p>
<p>{{.Passed}}/{{.TotalTests}} passed ({{printf "%.1f" .SuccessRate}}%), {{.Failed}} failed, {{.Skipped}} skipped</p>
<table>
<tr><th>Scenario</th><th>Category</th><th>Result</th><th>Duration</th></tr>
{{range .Results}}
<tr>
<td>{{.Name}}</td>
<td>{{.Category}}</td>
<td>{{if .Skipped}}<span class="skip">SKIP</span>{{else if .Passed}}<span class="pass">PASS</span>{{else}}<span class="fail">FAIL</span>{{end}}</td>
<td>{{printf "%.2fs" .Duration}}</td>
</tr>
{{if and (not .Passed) (not .Skipped) .Output}}
<tr><td colspan="4"><pre>{{range .Output}}{{.}}{{end}}</pre></td></tr>
{{end}}
{{end}}
</table>
</body>
</html>`))

// Serve exposes the report on addr: an HTML summary at / and the raw
// JSON at /api/report. Blocks until the server exits.
func Serve(addr string, rep *RunReport) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(pageTmpl)

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "report", rep)
	})
	r.GET("/api/report", func(c *gin.Context) {
		c.JSON(http.StatusOK, rep)
	})

	fmt.Printf("Report for run %s available at http://%s\n", rep.RunID, addr)
	return r.Run(addr)
}
