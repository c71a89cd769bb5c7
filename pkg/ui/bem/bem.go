// Package bem builds block__element_modifier class names.
package bem

import (
	"fmt"
	"sort"
	"strings"
)

// Modifiers maps modifier names to values. true adds "block_name",
// strings and numbers add "block_name_value", and false, nil or empty
// values are dropped.
type Modifiers map[string]any

// Block returns the block class followed by one class per modifier.
func Block(block string, mods Modifiers) string {
	classes := []string{block}

	keys := make([]string, 0, len(mods))
	for k := range mods {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := mods[k].(type) {
		case nil:
		case bool:
			if v {
				classes = append(classes, block+"_"+k)
			}
		case string:
			if v != "" {
				classes = append(classes, block+"_"+k+"_"+v)
			}
		default:
			classes = append(classes, fmt.Sprintf("%s_%s_%v", block, k, v))
		}
	}
	return strings.Join(classes, " ")
}

// Element returns the class of an element inside block.
func Element(block, elem string) string {
	return block + "__" + elem
}

// Split returns the individual classes of a class string.
func Split(classes string) []string {
	return strings.Fields(classes)
}
