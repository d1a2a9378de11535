package mdspan

// resolve matches delimiter runs in a single left-to-right pass. A closer
// pairs with the nearest opener of the same marker; openers stacked above
// it are abandoned and later degrade to literal text. When lengths differ
// the matched part is min(opener, closer, 2) and the remainder stays on the
// stack (opener) or keeps searching (closer). Interior runs try to close
// first and push what is left as an opener.
func (p *parser) resolve() {
	stack := p.stack[:0]
	var pending [3]int
	for i := range p.nodes {
		n := &p.nodes[i]
		if n.marker == MarkerNone {
			continue
		}
		remaining := n.count
		for n.canClose && remaining > 0 && pending[n.marker] > 0 {
			j := len(stack) - 1
			for p.nodes[stack[j]].marker != n.marker {
				pending[p.nodes[stack[j]].marker]--
				j--
			}
			stack = stack[:j+1]
			opener := &p.nodes[stack[j]]
			use := min(opener.remain, remaining, 2)
			if use == 2 {
				opener.openD++
				n.closeD++
			} else {
				opener.openS++
				n.closeS++
			}
			opener.remain -= use
			remaining -= use
			if opener.remain == 0 {
				stack = stack[:j]
				pending[n.marker]--
			}
		}
		if remaining > 0 && n.canOpen {
			n.remain = remaining
			stack = append(stack, i)
			pending[n.marker]++
		}
	}
	p.stack = stack[:0]
}
