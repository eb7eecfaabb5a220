package asset

// DefaultConfig is the built-in configuration used when no file is given
const DefaultConfig = `
# === Page ===
page = "home"
heading = "Selected work in motion"

# === Palette ===
[palette]
cool = "#00F0C8"
warm = "#FF8200"
static = "#05EFBF"

# === Keys ===
# Values name an action; "none" removes a default binding
[keys]
q = "quit"
enter = "activate"

# === Items ===
# Bare links resolve under /case-studies/

[[item]]
title = "Tidewater"
meta = "Brand film / 2024"
media = "demo/01.gif"
poster = "demo/01-poster.png"
link = "tidewater"

[[item]]
title = "Northlight"
meta = "Campaign / 2024"
media = "demo/02.gif"
poster = "demo/02-poster.png"
link = "northlight"

[[item]]
title = "Field Notes"
meta = "Documentary / 2023"
media = "demo/03.gif"
poster = "demo/03-poster.png"
link = "field-notes"

[[item]]
title = "Ember & Ash"
meta = "Title sequence / 2023"
media = "demo/04.gif"
poster = "demo/04-poster.png"
link = "ember-and-ash"

[[item]]
title = "Lowland"
meta = "Music video / 2023"
media = "demo/05.gif"
poster = "demo/05-poster.png"
link = "lowland"

[[item]]
title = "Parallax"
meta = "Product launch / 2022"
media = "demo/06.gif"
poster = "demo/06-poster.png"
link = "parallax"

[[item]]
title = "Quiet Hours"
meta = "Short film / 2022"
media = "demo/07.gif"
poster = "demo/07-poster.png"
link = "/journal/quiet-hours"

[[item]]
title = "Saltmarsh"
meta = "Installation / 2021"
media = "demo/08.gif"
poster = "demo/08-poster.png"
link = "saltmarsh"
`
