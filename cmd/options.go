package cmd

// Options is the root for the CLI, parsed by github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON URL"`

	Get       *GetCmd       `command:"get"        description:"Look up a key"`
	Insert    *InsertCmd    `command:"insert"     description:"Insert a key/value pair"`
	Exec      *ExecCmd      `command:"exec"       description:"Execute a tool through the workflow runtime"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List registered tools"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one tool"`
	Serve     *ServeCmd     `command:"serve"      description:"Start MCP server exposing the table tools"`
}

// Init instantiates the sub-command referenced by the first positional
// argument so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "get":
		o.Get = &GetCmd{}
	case "insert":
		o.Insert = &InsertCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
