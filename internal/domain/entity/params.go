package entity

import "strings"

// RenderInstructions substitutes every {{name}} token of a declared param with
// its binding, falling back to the param default and then to "". Tokens that
// reference undeclared params are left verbatim. Substitution is one pass, so
// a value that itself looks like a token is not expanded again.
func (t Task) RenderInstructions(bindings map[string]string) string {
	if len(t.Params) == 0 {
		return t.Instructions
	}

	pairs := make([]string, 0, len(t.Params)*2)
	for _, p := range t.Params {
		pairs = append(pairs, "{{"+p.Name+"}}", ResolveParam(p, bindings))
	}
	return strings.NewReplacer(pairs...).Replace(t.Instructions)
}

// ResolveParam picks the value used for p: a non-empty binding, else the default.
func ResolveParam(p TaskParam, bindings map[string]string) string {
	if v := bindings[p.Name]; v != "" {
		return v
	}
	return p.Value
}

// MissingRequired lists required params that resolve to an empty value.
func (t Task) MissingRequired(bindings map[string]string) []string {
	var missing []string
	for _, p := range t.Params {
		if p.Required && ResolveParam(p, bindings) == "" {
			missing = append(missing, p.Name)
		}
	}
	return missing
}
