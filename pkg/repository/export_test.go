package repository

const (
	CreateStyleCypher = createStyleCypher
	ReadStyleCypher   = readStyleCypher
	UpdateStyleCypher = updateStyleCypher
	DeleteStyleCypher = deleteStyleCypher
)
