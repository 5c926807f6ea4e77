/*
main.go - Application entry point

PURPOSE:
  Wires the payroll console application: SQLite-backed store, department
  registry, interactive menu on stdin/stdout.

STARTUP SEQUENCE:
  1. Configure zerolog (console writer on stderr)
  2. Open the in-memory SQLite store
  3. Create the department registry
  4. Run the menu loop until the user exits

STATE:
  The store is opened with ":memory:", so all work types vanish when
  the process ends. There are no flags, arguments, environment
  variables, or files.

SEE ALSO:
  - console/menu.go: The interactive loop
  - store/sqlite/sqlite.go: Storage implementation
*/
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/warp/payroll-registry/console"
	"github.com/warp/payroll-registry/payroll"
	"github.com/warp/payroll-registry/store/sqlite"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	st, err := sqlite.New(":memory:")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer st.Close()

	dept := payroll.NewDepartment(st, log.Logger)
	menu := console.NewMenu(os.Stdin, os.Stdout, dept)

	if err := menu.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("menu loop failed")
	}
}
