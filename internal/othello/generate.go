package othello

//go:generate go run ../../cmd/rotgen -o rotation_tables.go
