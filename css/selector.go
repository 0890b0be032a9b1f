package css

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"ssys/system"
)

// classNamespace seeds name based UUIDs of generated class names.
var classNamespace = uuid.MustParse("6f1c3f0e-8a5e-4f58-9d43-2b7a1f0c9e55")

// ClassName derives a stable class name from style content: the same
// declarations in the same order always give the same name.
func ClassName(style *system.Style) string {
	data, err := style.MarshalJSON()
	if err != nil {
		data = []byte(style.String())
	}
	id := uuid.NewSHA1(classNamespace, data)
	return "css-" + hex.EncodeToString(id[:4])
}

// Values are available to selector templates.
type Values struct {
	Name       string // slug of the props source name
	SourceFile string // props file name without directory and extension
	Class      string // content based class name, see ClassName
}

// ExpandSelector executes selector template for props source src and the
// style rendered from it.
func ExpandSelector(field, src string, style *system.Style) (string, error) {
	tmpl, err := template.New("selector").Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse selector template: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	values := Values{
		Name:       slug.Make(base),
		SourceFile: base,
		Class:      ClassName(style),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand selector template: %w", err)
	}
	sel := strings.TrimSpace(buf.String())
	if sel == "" {
		return "", fmt.Errorf("selector template '%s' produced empty selector", field)
	}
	return sel, nil
}
