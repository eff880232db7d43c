package pivot

// PartitionName identifies one of the fixed partitions of a Setting.
type PartitionName string

const (
	PartitionRows    PartitionName = "rows"
	PartitionColumns PartitionName = "columns"
	PartitionValues  PartitionName = "values"
)

// Partitions lists the partition names in declaration order.
var Partitions = []PartitionName{PartitionRows, PartitionColumns, PartitionValues}

// Setting assigns field references to partitions. Order within a partition
// is the header nesting order.
type Setting struct {
	Rows    []FieldRef `json:"rows"`
	Columns []FieldRef `json:"columns"`
	Values  []FieldRef `json:"values"`
}

// Get returns the refs assigned to name, or nil for an unknown name.
func (s Setting) Get(name PartitionName) []FieldRef {
	switch name {
	case PartitionRows:
		return s.Rows
	case PartitionColumns:
		return s.Columns
	case PartitionValues:
		return s.Values
	}
	return nil
}

// With returns a copy of s whose partition name holds refs. An unknown name
// returns s unchanged.
func (s Setting) With(name PartitionName, refs []FieldRef) Setting {
	switch name {
	case PartitionRows:
		s.Rows = refs
	case PartitionColumns:
		s.Columns = refs
	case PartitionValues:
		s.Values = refs
	}
	return s
}

// Len returns the total number of assigned refs.
func (s Setting) Len() int { return len(s.Rows) + len(s.Columns) + len(s.Values) }

// Clone returns a deep copy of s.
func (s Setting) Clone() Setting {
	return Setting{
		Rows:    cloneRefs(s.Rows),
		Columns: cloneRefs(s.Columns),
		Values:  cloneRefs(s.Values),
	}
}

// Equal reports whether s and other assign the same refs in the same order.
func (s Setting) Equal(other Setting) bool {
	for _, name := range Partitions {
		a, b := s.Get(name), other.Get(name)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
	}
	return true
}

// PartitionOf returns the partition holding ref.
func (s Setting) PartitionOf(ref FieldRef) (PartitionName, bool) {
	key := ref.Key()
	for _, name := range Partitions {
		for _, r := range s.Get(name) {
			if r.Key() == key {
				return name, true
			}
		}
	}
	return "", false
}

func cloneRefs(refs []FieldRef) []FieldRef {
	out := make([]FieldRef, len(refs))
	for i, r := range refs {
		out[i] = r.Clone()
	}
	return out
}

// PartitionDescriptor declares a partition and the columns it accepts.
// A nil Filter accepts every column.
type PartitionDescriptor struct {
	Name   PartitionName
	Title  string
	Filter func(Column) bool
}

// Accepts reports whether c may be placed in the partition.
func (d PartitionDescriptor) Accepts(c Column) bool {
	return d.Filter == nil || d.Filter(c)
}

// DefaultPartitions returns the pivot table's partitions in priority order:
// dimensions go to rows first, then columns, and measures go to values.
func DefaultPartitions() []PartitionDescriptor {
	return []PartitionDescriptor{
		{Name: PartitionRows, Title: "Rows", Filter: IsDimension},
		{Name: PartitionColumns, Title: "Columns", Filter: IsDimension},
		{Name: PartitionValues, Title: "Measures", Filter: IsMetric},
	}
}
