package eval_test

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/sxlang/sx/pkg/eval"
	"github.com/sxlang/sx/pkg/eval/vals"
	"github.com/sxlang/sx/pkg/must"
)

type example struct {
	Name      string `yaml:"name"`
	Code      string `yaml:"code"`
	Want      string `yaml:"want"`
	WantError string `yaml:"want-error"`
}

func TestExamples(t *testing.T) {
	var examples []example
	must.OK(yaml.Unmarshal(must.ReadFile("testdata/examples.yaml"), &examples))
	if len(examples) == 0 {
		t.Fatal("no examples loaded")
	}

	for _, ex := range examples {
		t.Run(ex.Name, func(t *testing.T) {
			v, err := eval.NewEvaler().Eval(eval.Source{Name: ex.Name, Code: ex.Code})
			if ex.WantError != "" {
				if err == nil {
					t.Fatalf("eval(%q) -> nil error, want error containing %q",
						ex.Code, ex.WantError)
				}
				if !strings.Contains(err.Error(), ex.WantError) {
					t.Errorf("eval(%q) -> error %q, want it to contain %q",
						ex.Code, err.Error(), ex.WantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("eval(%q) -> error %v, want nil", ex.Code, err)
			}
			if got := vals.Repr(v); got != ex.Want {
				t.Errorf("eval(%q) -> %s, want %s", ex.Code, got, ex.Want)
			}
		})
	}
}
