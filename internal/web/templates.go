package web

// Minimal server-rendered pages; no static assets to serve.
const pageTemplates = `
{{define "index"}}<!DOCTYPE html>
<html lang="pl">
<head>
<meta charset="utf-8">
<title>słówko</title>
<style>
body { font-family: sans-serif; max-width: 44rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { color: #2a9d8f; }
input[type=text] { font-size: 1.2rem; padding: 0.4rem; width: 60%; }
button { font-size: 1.2rem; padding: 0.4rem 1rem; }
</style>
</head>
<body>
<h1>słówko</h1>
<p>Słownik języka polskiego oparty na Wikisłowniku.</p>
<form action="/" method="get">
<input type="text" name="q" placeholder="wpisz słowo" autofocus>
<button type="submit">szukaj</button>
</form>
</body>
</html>
{{end}}

{{define "result"}}<!DOCTYPE html>
<html lang="pl">
<head>
<meta charset="utf-8">
<title>{{.Word}} – słówko</title>
<style>
body { font-family: sans-serif; max-width: 44rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { color: #2a9d8f; }
h2 { font-size: 1rem; color: #666; border-bottom: 1px solid #ddd; }
.grammar { font-style: italic; color: #888; }
.label { color: #888; }
ol { margin-top: 0.2rem; }
table { border-collapse: collapse; margin: 0.5rem 0; }
td, th { border: 1px solid #ccc; padding: 0.2rem 0.6rem; text-align: left; }
a { color: #2a9d8f; }
</style>
</head>
<body>
<p><a href="/">← szukaj</a></p>
<h1>{{.Display}}</h1>
{{if not .Found}}
<p>Nie znaleziono wyniku dla: {{.Word}}</p>
{{else}}
{{range .Sources}}
<h2>{{.Name}}</h2>
{{range .Blocks}}
<p class="grammar">{{.Header}}</p>
<ol start="{{.Start}}">
{{range .Definitions}}<li>{{.}}</li>
{{end}}</ol>
{{end}}
{{if .Pronunciation}}<p><span class="label">wymowa:</span> {{.Pronunciation}}</p>{{end}}
{{if .Etymology}}<p><span class="label">etymologia:</span> {{.Etymology}}</p>{{end}}
{{if .Lemma}}<p><span class="label">forma wyrazu:</span> <a href="/w/{{.Lemma}}">{{.Lemma}}</a></p>{{end}}
{{range .Tables}}
<table>
{{range .}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
{{end}}
{{end}}
{{if .Examples}}
<h2>przykłady</h2>
<ul>
{{range .Examples}}<li>{{.}}</li>
{{end}}</ul>
{{end}}
{{end}}
</body>
</html>
{{end}}
`
