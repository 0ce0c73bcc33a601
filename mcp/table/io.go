package table

// DefaultTable is used when an input does not name a table.
const DefaultTable = "default"

// InsertInput stores Value under Key in Table.
type InsertInput struct {
	Table string      `json:"table,omitempty" description:"table name, defaults to 'default'"`
	Key   string      `json:"key" description:"key to store, empty key is allowed"`
	Value interface{} `json:"value" description:"JSON value to store"`
}

// InsertOutput reports the table size observed atomically with the insert.
type InsertOutput struct {
	Table string `json:"table"`
	Key   string `json:"key"`
	Size  int    `json:"size"`
}

// GetInput looks up Key in Table.
type GetInput struct {
	Table string `json:"table,omitempty" description:"table name, defaults to 'default'"`
	Key   string `json:"key" description:"key to look up"`
}

// GetOutput holds a lookup result; Found is false for keys never inserted.
type GetOutput struct {
	Table string      `json:"table"`
	Key   string      `json:"key"`
	Value interface{} `json:"value,omitempty"`
	Found bool        `json:"found"`
}

// LenInput selects a table.
type LenInput struct {
	Table string `json:"table,omitempty" description:"table name, defaults to 'default'"`
}

// LenOutput reports the number of keys in a table.
type LenOutput struct {
	Table string `json:"table"`
	Size  int    `json:"size"`
}

func tableName(name string) string {
	if name == "" {
		return DefaultTable
	}
	return name
}
