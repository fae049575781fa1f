package htmlutil

import (
	"testing"
)

const pageHTML = `
<html><head>
<title> De Oratore </title>
<style>body { color: #333; }</style>
</head><body>
<script>var tracking = true;</script>
<p>cogitanti mihi saepe numero</p><p>et memoria vetera repetenti</p>
<noscript>enable javascript to continue</noscript>
</body></html>
`

func TestText(t *testing.T) {
	doc, err := ParseString(pageHTML)
	if err != nil {
		t.Fatal(err)
	}
	got := Text(doc)
	want := "cogitanti mihi saepe numero et memoria vetera repetenti"
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestTextSeparatesGluedBlocks(t *testing.T) {
	doc, err := ParseString(`<html><body><p>alpha</p><p>beta</p></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if got := Text(doc); got != "alpha beta" {
		t.Errorf("Text = %q, want %q", got, "alpha beta")
	}
}

func TestTextSkipsScriptInsideBody(t *testing.T) {
	doc, err := ParseString(`<html><body><p>alpha</p><script>let x = 1;</script><p>beta</p></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if got := Text(doc); got != "alpha beta" {
		t.Errorf("Text = %q, want %q", got, "alpha beta")
	}
}

func TestTitle(t *testing.T) {
	doc, err := ParseString(pageHTML)
	if err != nil {
		t.Fatal(err)
	}
	if got := Title(doc); got != "De Oratore" {
		t.Errorf("Title = %q, want %q", got, "De Oratore")
	}
}

func TestTitleMissing(t *testing.T) {
	doc, err := ParseString(`<html><body><p>alpha</p></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if got := Title(doc); got != "" {
		t.Errorf("Title = %q, want empty", got)
	}
}
