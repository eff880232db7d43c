package pivot

// Reconcile brings stored in line with the columns of the current result.
//
// Refs whose column disappeared are removed from every partition; the
// survivors keep their relative order. Each new column, in column order,
// is appended to the first partition whose descriptor accepts it. A column
// no partition accepts is dropped. stored is not modified.
func Reconcile(stored Setting, columns []Column, partitions []PartitionDescriptor) Setting {
	current := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		current[c.FieldRef.Key()] = struct{}{}
	}

	assigned := make(map[string]struct{}, stored.Len())
	var out Setting
	for _, name := range Partitions {
		kept := make([]FieldRef, 0, len(stored.Get(name)))
		for _, ref := range stored.Get(name) {
			key := ref.Key()
			assigned[key] = struct{}{}
			if _, ok := current[key]; ok {
				kept = append(kept, ref.Clone())
			}
		}
		out = out.With(name, kept)
	}

	for _, c := range columns {
		key := c.FieldRef.Key()
		if _, ok := assigned[key]; ok {
			continue
		}
		assigned[key] = struct{}{}
		for _, p := range partitions {
			if !isPartition(p.Name) || !p.Accepts(c) {
				continue
			}
			out = out.With(p.Name, append(out.Get(p.Name), c.FieldRef.Clone()))
			break
		}
	}
	return out
}

func isPartition(name PartitionName) bool {
	for _, n := range Partitions {
		if n == name {
			return true
		}
	}
	return false
}

// ReconcileFromQueryBreakouts adds breakouts of q that the setting does not
// yet place in rows or columns. When the setting already holds at least as
// many row and column refs as q has breakouts it is returned unchanged.
// Only Rows and Columns of the result differ from setting.
func ReconcileFromQueryBreakouts(setting Setting, q *Query) Setting {
	var breakouts []FieldRef
	if q != nil {
		breakouts = q.Breakouts
	}
	if len(breakouts) <= len(setting.Rows)+len(setting.Columns) {
		return setting
	}

	cols := make([]Column, len(breakouts))
	for i, ref := range breakouts {
		cols[i] = Column{FieldRef: ref}
	}
	next := Reconcile(setting, cols, DefaultPartitions())
	setting.Rows = next.Rows
	setting.Columns = next.Columns
	return setting
}
