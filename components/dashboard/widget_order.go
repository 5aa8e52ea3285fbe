package dashboard

// WidgetOrder is the ordered list of widget ids rendered on a page.
type WidgetOrder []string

// NewWidgetOrder copies ids into a fresh order.
func NewWidgetOrder(ids []string) WidgetOrder {
	return append(WidgetOrder(nil), ids...)
}

// IndexOf reports the position of id, or -1.
func (o WidgetOrder) IndexOf(id string) int {
	for i, v := range o {
		if v == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is part of the order.
func (o WidgetOrder) Contains(id string) bool {
	return o.IndexOf(id) >= 0
}

// Reorder moves sourceID to the position currently held by targetID and
// returns the new order. Equal ids or ids missing from the order leave the
// order unchanged. The receiver is never modified.
func (o WidgetOrder) Reorder(sourceID, targetID string) WidgetOrder {
	out := NewWidgetOrder(o)
	if sourceID == targetID {
		return out
	}
	from, to := out.IndexOf(sourceID), out.IndexOf(targetID)
	if from < 0 || to < 0 {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append(WidgetOrder{moved}, out[to:]...)...)
	return out
}
