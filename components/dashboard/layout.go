package dashboard

// applyWidgetOrder returns the widgets listed in order, in that order. Ids with
// no widget are skipped and reported through missing.
func applyWidgetOrder(widgets map[string]Widget, order WidgetOrder) (ordered []orderedWidget, missing []string) {
	ordered = make([]orderedWidget, 0, len(order))
	seen := make(map[string]struct{}, len(order))
	for _, id := range order {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		w, ok := widgets[id]
		if !ok || w == nil {
			missing = append(missing, id)
			continue
		}
		ordered = append(ordered, orderedWidget{ID: id, Widget: w})
	}
	return ordered, missing
}

type orderedWidget struct {
	ID     string
	Widget Widget
}
