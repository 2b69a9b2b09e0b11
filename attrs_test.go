package reactfy

import (
	"strings"
	"testing"
)

func rewriteMarkup(t *testing.T, markup string) string {
	t.Helper()
	root := parseMarkup(t, markup)
	RewriteAttrs(root, nil)
	out, err := RenderString(root)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return out
}

func TestRewriteAttrs(t *testing.T) {
	cases := []struct {
		name, in, out string
	}{
		{"class", `<div class=" a   b "></div>`, `<div className="a b"></div>`},
		{"for", `<label for="q">Q</label>`, `<label htmlFor="q">Q</label>`},
		{"kebab", `<td tab-index="2" accept-charset="utf-8"></td>`, `<td tabIndex="2" acceptCharset="utf-8"></td>`},
		{"data and aria", `<div data-role="x" aria-hidden="true"></div>`, `<div data-role="x" aria-hidden="true"></div>`},
		{"style", `<p style="color: red; margin-top: 4px">x</p>`, `<p style={{ color: 'red', marginTop: '4px' }}>x</p>`},
		{"empty style", `<p style="">x</p>`, `<p style={{  }}>x</p>`},
		{"class and style", `<p class="a" style="font-size:2em" id="p">x</p>`,
			`<p className="a" style={{ fontSize: '2em' }} id="p">x</p>`},
		{"unknown", `<my-widget foo="bar"></my-widget>`, `<my-widget foo="bar"></my-widget>`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			compareOutput(t, c.out, rewriteMarkup(t, c.in))
		})
	}
	t.Run("no class survives", func(t *testing.T) {
		out := rewriteMarkup(t, `<ul class="x"><li class="y"><span class="z">a</span></li></ul>`)
		if strings.Contains(out, "class=") {
			t.Errorf("class attribute found in %s", out)
		}
	})
}

func TestParseStyle(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		style, dropped := ParseStyle("color: red; broken; margin-top : 4px ;; background: url(a.png)")
		if len(dropped) != 1 || dropped[0] != "broken" {
			t.Errorf("dropped should be [broken], got %v", dropped)
			return
		}
		compareOutput(t, "{ color: 'red', marginTop: '4px', background: 'url(a.png)' }", style.String())
	})
	t.Run("value with colon", func(t *testing.T) {
		style, _ := ParseStyle("background-image: url(http://x/a.png)")
		compareOutput(t, "{ backgroundImage: 'url(http://x/a.png)' }", style.String())
	})
	t.Run("vendor prefix", func(t *testing.T) {
		style, _ := ParseStyle("-webkit-transition: none")
		compareOutput(t, "{ WebkitTransition: 'none' }", style.String())
	})
	t.Run("repeated property", func(t *testing.T) {
		style, _ := ParseStyle("color: red; margin: 0; color: blue")
		compareOutput(t, "{ color: 'blue', margin: '0' }", style.String())
	})
	t.Run("quotes", func(t *testing.T) {
		style, _ := ParseStyle("font-family: 'Open Sans', sans-serif")
		compareOutput(t, `{ fontFamily: '\'Open Sans\', sans-serif' }`, style.String())
	})
	t.Run("empty property", func(t *testing.T) {
		style, dropped := ParseStyle(": red")
		if len(style) != 0 || len(dropped) != 1 {
			t.Errorf("declaration without property should be dropped, got %v %v", style, dropped)
		}
	})
}
