package httpapi

import (
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-panel/internal/panel"
)

var pageTemplate = template.Must(template.New("panel").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Today's Weather</title>
<style>
  body { margin: 0; font-family: sans-serif; }
  .app { min-height: 100vh; display: flex; align-items: center; justify-content: center; }
  .app.day { background: #f5f0e8; color: #2a2520; }
  .app.night { background: #0f0f1a; color: #eeeeee; }
  .weather-card { padding: 2rem; border-radius: 1rem; text-align: center; min-width: 320px; }
  .day .weather-card { background: #ffffff; }
  .night .weather-card { background: #1a1a2e; }
  .details { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; }
</style>
</head>
<body>
<div class="{{.Class}}">
  <div class="weather-card">
    <h1 class="title">Today's Weather</h1>
    <form method="post" action="/toggle">
      <button class="toggle-mode" type="submit">{{.ToggleLabel}}</button>
    </form>
    <form class="search-box" method="post" action="/search">
      <input type="text" name="city" placeholder="Enter city name" value="{{.CityInput}}">
      <button type="submit">Search</button>
    </form>
    {{with .Weather}}
    <div class="weather-info">
      <div class="icon"><img src="{{.IconSrc}}" alt="{{.IconAlt}}"></div>
      <h2 class="temp">{{.Temperature}}</h2>
      <p class="desc">{{.Condition}}</p>
      <p class="location">{{.Location}}</p>
      <div class="details">
        {{range .Cards}}
        <div>
          <span>{{.Glyph}}</span>
          <p>{{.Label}}</p>
          <strong>{{.Value}}</strong>
        </div>
        {{end}}
      </div>
    </div>
    {{else}}
    <p>{{.Placeholder}}</p>
    {{end}}
  </div>
</div>
</body>
</html>
`))

func renderPage(c *fiber.Ctx, v panel.View) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return pageTemplate.Execute(c, v)
}
