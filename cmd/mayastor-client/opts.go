package main

var opts struct {
	Addr    string `long:"addr" env:"MAYASTOR_ADDR" required:"true" description:"address of the storage node, port defaults to the control port"`
	UUID    string `long:"uuid" description:"uuid used by create commands, generated when empty"`
	Timeout int    `long:"timeout" description:"per command timeout (s)" default:"30"`
	Verbose bool   `long:"verbose" description:"verbose mode"`

	Args struct {
		Command []string `positional-arg-name:"command" description:"what to do, e.g. 'pool list' or 'nexus publish <uuid>'"`
	} `positional-args:"true"`
}
