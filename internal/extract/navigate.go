// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "github.com/Jeffail/gabs"

// str returns the string at path under c, or "" when any step is absent or
// the leaf is not a string.
func str(c *gabs.Container, path ...string) string {
	if c == nil {
		return ""
	}
	s, _ := c.Search(path...).Data().(string)
	return s
}

// list returns the elements of the array at path under c. Anything other
// than an array (including absence) yields nil.
func list(c *gabs.Container, path ...string) []*gabs.Container {
	if c == nil {
		return nil
	}
	arr, ok := c.Search(path...).Data().([]interface{})
	if !ok {
		return nil
	}
	out := make([]*gabs.Container, 0, len(arr))
	for _, v := range arr {
		child, err := gabs.Consume(v)
		if err != nil {
			continue
		}
		out = append(out, child)
	}
	return out
}

// has reports whether path exists under c, whatever its value.
func has(c *gabs.Container, path ...string) bool {
	return c != nil && c.Exists(path...)
}

// commentsOfType returns the protein's comments whose type equals t, in
// document order.
func commentsOfType(protein *gabs.Container, t string) []*gabs.Container {
	var out []*gabs.Container
	for _, c := range list(protein, "comments") {
		if str(c, "type") == t {
			out = append(out, c)
		}
	}
	return out
}

// textValues collects text[].value of each comment, skipping entries
// without a string value.
func textValues(comments []*gabs.Container) []string {
	var out []string
	for _, c := range comments {
		for _, t := range list(c, "text") {
			if v := str(t, "value"); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
