package server

import "html/template"

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>dropletgen</title>
  <style>
    body { font-family: sans-serif; max-width: 40rem; margin: 3rem auto; color: #222; }
    form { border: 1px solid #ccc; border-radius: 6px; padding: 1.5rem; }
    label { display: block; margin-bottom: 1rem; }
    input[type=submit] { padding: 0.4rem 1.2rem; }
    code { background: #f4f4f4; padding: 0 0.3rem; }
  </style>
</head>
<body>
  <h1>dropletgen</h1>
  <p>Upload a CSV with <code>id,angle</code> columns to generate a droplet dataset.</p>
  <form method="post" action="/jobs" enctype="multipart/form-data">
    <label>CSV file <input type="file" name="csv" accept=".csv" required></label>
    <label>Server directory (optional) <input type="text" name="dir" placeholder="run-name"></label>
    <input type="submit" value="Generate">
  </form>
</body>
</html>
`))

var galleryTemplate = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>dropletgen — job {{.ID}}</title>
  <style>
    body { font-family: sans-serif; max-width: 60rem; margin: 3rem auto; color: #222; }
    .grid { display: flex; flex-wrap: wrap; gap: 1rem; }
    .grid figure { margin: 0; text-align: center; }
    .grid img { border: 1px solid #ccc; border-radius: 4px; }
    .skipped { color: #a33; }
  </style>
</head>
<body>
  <h1>Job {{.ID}}</h1>
  <p>
    {{len .Names}} images ·
    <a href="/jobs/{{.ID}}/archive.zip">download archive.zip</a> ·
    <a href="/">new job</a>
  </p>
  <div class="grid">
    {{range .Names}}
    <figure>
      <a href="/jobs/{{$.ID}}/images/{{.}}"><img src="/jobs/{{$.ID}}/thumbs/{{.}}" alt="{{.}}"></a>
      <figcaption>{{.}}</figcaption>
    </figure>
    {{end}}
  </div>
  {{if .Skipped}}
  <h2 class="skipped">Skipped rows</h2>
  <ul class="skipped">
    {{range .Skipped}}<li>{{.Error}}</li>{{end}}
  </ul>
  {{end}}
</body>
</html>
`))
