package reactfy

import (
	"testing"

	"github.com/casbin/govaluate"
)

func TestComponentName(t *testing.T) {
	cases := map[string]string{
		"About Us.html":         "aboutUs",
		"3d-model.html":         "_3dModel",
		"index.html":            "index",
		"Q&A.html":              "qa",
		"about@home.html":       "abouthome",
		"my_page.htm":           "myPage",
		"pages/contact-us.html": "contactUs",
		"  landing  page .html": "landingPage",
		"!!!.html":              DefaultComponentName,
		"":                      DefaultComponentName,
	}
	for fileName, expected := range cases {
		t.Run(fileName, func(t *testing.T) {
			compareOutput(t, expected, ComponentName(fileName))
		})
	}
}

func TestCamelize(t *testing.T) {
	cases := map[string]string{
		"tab-index":        "tabIndex",
		"margin-top":       "marginTop",
		"border-top-width": "borderTopWidth",
		"color":            "color",
		"Font-Size":        "fontSize",
	}
	for in, expected := range cases {
		compareOutput(t, expected, Camelize(in))
	}
}

func TestSanitize(t *testing.T) {
	compareOutput(t, "hero_banner_v2", Sanitize("hero-banner.v2"))
	compareOutput(t, "a_b", Sanitize("a -- b"))
	compareOutput(t, "snake_case", Sanitize("snake_case"))
}

func TestEval(t *testing.T) {
	expr, err := govaluate.NewEvaluableExpression("tag == 'div'")
	if err != nil {
		t.Errorf("%+v", err)
		return
	}
	matched, err := Eval[bool](expr, map[string]any{"tag": "div"})
	if err != nil || !matched {
		t.Errorf("expression should match, err: %v", err)
	}
	if _, err := Eval[string](expr, map[string]any{"tag": "div"}); err == nil {
		t.Error("expected type error")
	}
}
