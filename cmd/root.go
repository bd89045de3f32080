package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                        help:"Run the server"`
	Style   StyleCmd   `cmd:"" help:"Create, read, update or delete a style"`
	Import  ImportCmd  `cmd:"" help:"Import styles from an integration"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations for the SQL store"`
}
