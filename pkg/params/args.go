package params

import (
	"fmt"
)

// FromArgs builds a bag from template call arguments. Each argument is either
// a map (merged in order) or a string key immediately followed by its value:
//
//	FromArgs("path", "a.jpg", "w", 320)
//	FromArgs(map[string]any{"path": "a.jpg"}, "alt", "Hero")
func FromArgs(args ...any) (Params, error) {
	out := Params{}
	for i := 0; i < len(args); i++ {
		switch value := args[i].(type) {
		case Params:
			for k, v := range value {
				out[k] = v
			}
		case map[string]any:
			for k, v := range value {
				out[k] = v
			}
		case map[string]string:
			for k, v := range value {
				out[k] = v
			}
		case string:
			if i+1 >= len(args) {
				return nil, fmt.Errorf("params: missing value for %q", value)
			}
			out[value] = args[i+1]
			i++
		default:
			return nil, fmt.Errorf("params: argument %d must be a key or a map, got %T", i, args[i])
		}
	}
	return out, nil
}
