// This file re-exports vdom helper functions for the el package.
package el

import "github.com/facet-dev/facet/pkg/vdom"

func Text(content string) *VNode {
	return vdom.Text(content)
}
func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}
func Fragment(children ...any) *VNode {
	return vdom.Fragment(children...)
}
func If(condition bool, node *VNode) *VNode {
	return vdom.If(condition, node)
}
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	return vdom.IfElse(condition, ifTrue, ifFalse)
}
func When(condition bool, fn func() *VNode) *VNode {
	return vdom.When(condition, fn)
}
func Unless(condition bool, node *VNode) *VNode {
	return vdom.Unless(condition, node)
}
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	return vdom.Range(items, fn)
}
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	return vdom.Repeat(n, fn)
}
func Nothing() *VNode {
	return vdom.Nothing()
}
