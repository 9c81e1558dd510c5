package runner

import "github.com/projectdiscovery/gologger"

var banner = (`
                 _ _
 _ __ _ __   __ _| | |__
| '__| '_ \ / _' | | '_ \
| |  | |_) | (_| | | |_) |
|_|  | .__/ \__, |_|_.__/
     |_|    |___/
`)

var version = "v0.1.0"

// showBanner prints the startup banner.
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\trpqdb %s\n\n", version)
}
