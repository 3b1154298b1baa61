package listing

// DialogField is one input of a create or edit dialog. A field with Options
// is a choice; otherwise it is free text.
type DialogField struct {
	Key         string
	Label       string
	Placeholder string
	Options     []string
	Value       string
}

// DialogSpec describes a dialog. Nothing a dialog collects is ever applied
// to the records.
type DialogSpec struct {
	Title  string
	Submit string
	Target string
	Fields []DialogField
}

func (d DialogSpec) clone(values map[string]string) DialogSpec {
	out := d
	out.Fields = make([]DialogField, len(d.Fields))
	for i, f := range d.Fields {
		f.Options = append([]string(nil), f.Options...)
		if v, ok := values[f.Key]; ok {
			f.Value = v
		}
		out.Fields[i] = f
	}
	return out
}
