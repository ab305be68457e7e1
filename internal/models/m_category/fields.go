package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	IDCategory = "id_category"
	NLeft      = "nleft"
	NRight     = "nright"
	LevelDepth = "level_depth"
)
