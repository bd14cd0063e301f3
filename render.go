package strfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const nilText = "<nil>"

var emptySpec = Specifier{Precision: NoPrecision}

func boolWord(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// renderer turns resolved values into text. It is created per Format call and is
// not shared between goroutines.
type renderer struct {
	delims  Delimiters
	printer *message.Printer
}

func newRenderer(delims Delimiters) *renderer {
	return &renderer{delims: delims}
}

// value renders v under an explicit coercion and specifier. hasSpec is false when the
// placeholder carried no specifier text, which is what makes booleans render as words.
func (r *renderer) value(v Value, c Coercion, spec Specifier, hasSpec bool) (string, error) {
	switch c {
	case CoerceString, CoerceRepr:
		text, err := r.natural(v)
		if err != nil {
			return "", err
		}
		return r.text(text, spec), nil
	case CoerceInt:
		n, err := toInt(v)
		if err != nil {
			return "", err
		}
		return r.integer(n, spec), nil
	case CoerceDecimal:
		f, err := toFloat(v)
		if err != nil {
			return "", err
		}
		return r.float(f, spec), nil
	}

	switch v.kind {
	case KindInt:
		return r.integer(v.num, spec), nil
	case KindFloat:
		return r.float(v.flt, spec), nil
	case KindBool:
		if !hasSpec {
			return boolWord(v.Bool()), nil
		}
		return r.integer(v.num, spec), nil
	case KindString:
		return r.text(v.str, spec), nil
	case KindSeq, KindMap, KindPair:
		return r.container(v, spec, hasSpec)
	case KindCustom:
		text, err := v.custom.Render(spec)
		if err != nil {
			return "", &ResolutionError{Msg: "custom value failed to render", Err: err}
		}
		return text, nil
	default:
		return r.text(nilText, spec), nil
	}
}

// natural renders v as "{}" would.
func (r *renderer) natural(v Value) (string, error) {
	return r.value(v, CoerceNone, emptySpec, false)
}

func renderNatural(v Value, delims Delimiters) (string, error) {
	return newRenderer(delims).natural(v)
}

// container renders sequences, maps and pairs, formatting each element with the
// same specifier.
func (r *renderer) container(v Value, spec Specifier, hasSpec bool) (string, error) {
	d := r.delims
	var sb strings.Builder

	switch v.kind {
	case KindSeq:
		sb.WriteString(d.ArrayOpen)
		for i, elem := range v.elems {
			if i > 0 {
				sb.WriteString(d.ArraySep)
			}
			text, err := r.value(elem, CoerceNone, spec, hasSpec)
			if err != nil {
				return "", err
			}
			sb.WriteString(text)
		}
		sb.WriteString(d.ArrayClose)
	case KindMap:
		sb.WriteString(d.MapOpen)
		for i := range v.elems {
			if i > 0 {
				sb.WriteString(d.MapSep)
			}
			if err := r.pair(&sb, v.keys[i], v.elems[i], spec, hasSpec); err != nil {
				return "", err
			}
		}
		sb.WriteString(d.MapClose)
	case KindPair:
		if err := r.pair(&sb, v.elems[0], v.elems[1], spec, hasSpec); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (r *renderer) pair(sb *strings.Builder, first, second Value, spec Specifier, hasSpec bool) error {
	key, err := r.value(first, CoerceNone, spec, hasSpec)
	if err != nil {
		return err
	}
	val, err := r.value(second, CoerceNone, spec, hasSpec)
	if err != nil {
		return err
	}
	sb.WriteString(r.delims.PairOpen)
	sb.WriteString(key)
	sb.WriteString(r.delims.PairSep)
	sb.WriteString(val)
	sb.WriteString(r.delims.PairClose)
	return nil
}

// text renders a string. Precision is a maximum length in runes.
func (r *renderer) text(s string, spec Specifier) string {
	if spec.HasPrecision() && utf8.RuneCountInString(s) > spec.Precision {
		n := 0
		for i := range s {
			if n == spec.Precision {
				s = s[:i]
				break
			}
			n++
		}
	}
	return assemble(parts{body: s}, spec, false)
}

// integer renders n in sign-magnitude form. Float presentation types promote n to
// a float.
func (r *renderer) integer(n int64, spec Specifier) string {
	switch spec.Type {
	case 'e', 'E', 'f', 'F', 'g', 'G', '%':
		return r.float(float64(n), spec)
	}

	neg := n < 0
	mag := uint64(n)
	if neg {
		mag = uint64(-(n + 1)) + 1
	}

	var body, prefix string
	switch spec.Type {
	case 'b':
		body, prefix = strconv.FormatUint(mag, 2), "0b"
	case 'o':
		body, prefix = strconv.FormatUint(mag, 8), "0o"
	case 'x':
		body, prefix = strconv.FormatUint(mag, 16), "0x"
	case 'X':
		body, prefix = strings.ToUpper(strconv.FormatUint(mag, 16)), "0X"
	default:
		body = strconv.FormatUint(mag, 10)
		if spec.Thousands || spec.Type == 'n' {
			body = r.group(body)
		}
	}
	if !spec.Alternate {
		prefix = ""
	}

	return assemble(parts{sign: signText(neg, spec.Sign), prefix: prefix, body: body}, spec, true)
}

// float renders x. Without an explicit precision, f/F/e/E/% use 6 digits and the
// remaining types choose a precision dynamically.
func (r *renderer) float(x float64, spec Specifier) string {
	neg := math.Signbit(x) && !math.IsNaN(x)
	abs := math.Abs(x)

	var body, suffix string
	switch {
	case math.IsNaN(x):
		body = "nan"
	case math.IsInf(x, 0):
		body = "inf"
	default:
		if spec.Type == '%' {
			abs *= 100
		}
		body = floatMagnitude(abs, spec)
		if spec.Thousands || spec.Type == 'n' {
			body = r.groupLeading(body)
		}
	}
	if spec.Type == '%' {
		suffix = "%"
	}
	if spec.IsUpper() {
		body = strings.ToUpper(body)
	}

	return assemble(parts{sign: signText(neg, spec.Sign), body: body, suffix: suffix}, spec, true)
}

func floatMagnitude(abs float64, spec Specifier) string {
	if spec.HasPrecision() {
		p := spec.Precision
		switch spec.Type {
		case 'e', 'E':
			return strconv.FormatFloat(abs, 'e', p, 64)
		case 'g', 'G', 'n':
			if p == 0 {
				p = 1
			}
			return strconv.FormatFloat(abs, 'g', p, 64)
		default:
			return strconv.FormatFloat(abs, 'f', p, 64)
		}
	}

	switch spec.Type {
	case 'f', 'F', '%':
		return strconv.FormatFloat(abs, 'f', 6, 64)
	case 'e', 'E':
		return strconv.FormatFloat(abs, 'e', 6, 64)
	case 'g', 'G', 'n':
		return generalDynamic.format(abs)
	default:
		return defaultDynamic.format(abs)
	}
}

func signText(neg bool, sign Sign) string {
	if neg {
		return "-"
	}
	switch sign {
	case SignAlways:
		return "+"
	case SignSpace:
		return " "
	default:
		return ""
	}
}

// groupLeading groups the integer digits at the start of a rendered float.
func (r *renderer) groupLeading(body string) string {
	end := strings.IndexAny(body, ".eE")
	if end < 0 {
		end = len(body)
	}
	return r.group(body[:end]) + body[end:]
}

// group inserts a comma every three digits.
func (r *renderer) group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return groupDigits(digits)
	}
	if r.printer == nil {
		r.printer = message.NewPrinter(language.English)
	}
	return r.printer.Sprintf("%d", u)
}

// groupDigits handles digit strings too long for uint64.
func groupDigits(digits string) string {
	var sb strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	sb.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
