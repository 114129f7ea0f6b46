package el

import "github.com/facet-dev/facet/pkg/vdom"

// Type aliases for the VDOM primitives used by the DSL.
type VNode = vdom.VNode
type VKind = vdom.VKind
type Props = vdom.Props
type Component = vdom.Component
type Instance = vdom.Instance
