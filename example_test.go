package logincount_test

import (
	"fmt"

	"github.com/mcstats/logincount"
)

func ExampleParseLogin() {
	name, err := logincount.ParseLogin("[12:00:00] [Server thread/INFO]: Alice[/127.0.0.1] logged in with entity id 5 at (...)")
	if err != nil {
		panic(err)
	}
	fmt.Println(name)
	// Output:
	// Alice
}

func ExampleTable() {
	tally := logincount.NewTally()
	for _, name := range []string{"Alice", "Bob", "Alice"} {
		tally.Record(name)
	}
	logincount.NewTable(tally.Ranked()).Pipe().Stdout()
	// Output:
	// Name______________No. of logins
	// Alice_____________2
	// Bob_______________1
}

func ExampleFile() {
	p := logincount.File("testdata/server.log")
	tally := logincount.NewTally()
	for line := range p.Lines() {
		if !logincount.IsLogin(line) {
			continue
		}
		name, err := logincount.ParseLogin(line)
		if err != nil {
			panic(err)
		}
		tally.Record(name)
	}
	if err := p.Error(); err != nil {
		panic(err)
	}
	fmt.Println(tally.Ranked())
	// Output:
	// [{Steve 2} {Alex 1}]
}
