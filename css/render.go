package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"ssys/system"
)

const mediaPrefix = "@media "

// unitless lists declarations whose numeric values are not lengths.
var unitless = map[string]bool{
	"animationIterationCount": true,
	"aspectRatio":             true,
	"borderImageOutset":       true,
	"borderImageSlice":        true,
	"borderImageWidth":        true,
	"columnCount":             true,
	"columns":                 true,
	"fillOpacity":             true,
	"flex":                    true,
	"flexGrow":                true,
	"flexShrink":              true,
	"floodOpacity":            true,
	"fontWeight":              true,
	"gridArea":                true,
	"gridColumn":              true,
	"gridColumnEnd":           true,
	"gridColumnStart":         true,
	"gridRow":                 true,
	"gridRowEnd":              true,
	"gridRowStart":            true,
	"lineClamp":               true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"stopOpacity":             true,
	"strokeDasharray":         true,
	"strokeDashoffset":        true,
	"strokeMiterlimit":        true,
	"strokeOpacity":           true,
	"strokeWidth":             true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,
}

// Renderer turns styles into stylesheets.
type Renderer struct {
	log     *zap.Logger
	pxUnits bool
}

// NewRenderer creates renderer. When pxUnits is set, non zero numbers
// assigned to length declarations get "px" appended.
func NewRenderer(log *zap.Logger, pxUnits bool) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{log: log.Named("css-render"), pxUnits: pxUnits}
}

// Render produces stylesheet for style under selector. Top level
// declarations form the first rule, "@media" blocks become media blocks and
// any other block is a nested selector: "&" in its name is replaced with the
// parent selector, names starting with ":" are appended to it, anything else
// is a descendant. Declarations that cannot be rendered are logged, recorded
// in Warnings and skipped.
func (r *Renderer) Render(selector string, style *system.Style) *Stylesheet {
	sheet := &Stylesheet{}
	items := r.renderBlock(sheet, selector, style)
	sheet.Items = append(sheet.Items, items...)
	r.log.Debug("Rendered style", zap.String("selector", selector), zap.Int("items", len(sheet.Items)), zap.Int("warnings", len(sheet.Warnings)))
	return sheet
}

func (r *Renderer) renderBlock(sheet *Stylesheet, selector string, style *system.Style) []StylesheetItem {
	rule := &Rule{Selector: selector}
	var nested []StylesheetItem

	for name, v := range style.All() {
		block, ok := v.(*system.Style)
		if !ok {
			if d, ok := r.declaration(sheet, selector, name, v); ok {
				rule.Declarations = append(rule.Declarations, d)
			}
			continue
		}

		if query, ok := strings.CutPrefix(name, mediaPrefix); ok {
			mb := &MediaBlock{Query: strings.TrimSpace(query)}
			for _, item := range r.renderBlock(sheet, selector, block) {
				switch {
				case item.Rule != nil:
					mb.Rules = append(mb.Rules, *item.Rule)
				case item.MediaBlock != nil:
					r.warn(sheet, selector, mediaPrefix+item.MediaBlock.Query, "nested media block")
				}
			}
			if len(mb.Rules) > 0 {
				nested = append(nested, StylesheetItem{MediaBlock: mb})
			}
			continue
		}
		nested = append(nested, r.renderBlock(sheet, nestSelector(selector, name), block)...)
	}

	if len(rule.Declarations) == 0 {
		return nested
	}
	return append([]StylesheetItem{{Rule: rule}}, nested...)
}

func (r *Renderer) declaration(sheet *Stylesheet, selector, name string, v any) (Declaration, bool) {
	property := PropertyName(name)
	if !strings.HasPrefix(property, "--") && !css.IsIdent([]byte(property)) {
		r.warn(sheet, selector, name, "bad property name")
		return Declaration{}, false
	}

	text, ok := r.formatValue(name, v)
	if !ok {
		r.warn(sheet, selector, name, fmt.Sprintf("unsupported value type %T", v))
		return Declaration{}, false
	}
	val, err := ParseValue(text)
	if err != nil {
		r.warn(sheet, selector, name, err.Error())
		return Declaration{}, false
	}
	return Declaration{Property: property, Value: val}, true
}

func (r *Renderer) formatValue(name string, v any) (string, bool) {
	switch tv := v.(type) {
	case nil, bool:
		return "", false
	case string:
		return tv, true
	case fmt.Stringer:
		return tv.String(), true
	}
	f, ok := system.Float(v)
	if !ok {
		return "", false
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if r.pxUnits && f != 0 && !unitless[name] && !strings.HasPrefix(name, "--") {
		s += "px"
	}
	return s, true
}

func (r *Renderer) warn(sheet *Stylesheet, selector, name, reason string) {
	r.log.Warn("Declaration dropped", zap.String("selector", selector), zap.String("name", name), zap.String("reason", reason))
	sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("%s { %s }: %s", selector, name, reason))
}

func nestSelector(parent, name string) string {
	name = strings.TrimSpace(name)
	switch {
	case strings.Contains(name, "&"):
		return strings.ReplaceAll(name, "&", parent)
	case strings.HasPrefix(name, ":"):
		return parent + name
	default:
		return parent + " " + name
	}
}

// PropertyName converts style declaration name into CSS property name:
// "backgroundColor" becomes "background-color", vendor prefixed names such
// as "WebkitTransition" or "msFlex" get a leading dash. Custom properties and
// names already in kebab case are left alone.
func PropertyName(name string) string {
	if strings.HasPrefix(name, "--") || strings.ContainsRune(name, '-') {
		return name
	}
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	if strings.HasPrefix(name, "ms") && len(name) > 2 && isUpper(name[2]) {
		sb.WriteByte('-')
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUpper(c) {
			sb.WriteByte('-')
			sb.WriteByte(c + ('a' - 'A'))
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
