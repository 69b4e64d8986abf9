////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package cmd initializes the CLI and config parsers as well as the logger.
package cmd

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"gitlab.com/elara-im/timeline/accessors"
	"gitlab.com/elara-im/timeline/events"
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Inspects timeline event streams through the accessor layer",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initLog(viper.GetUint("logLevel"), viper.GetString("log"))

		in := os.Stdin
		path := viper.GetString("file")
		if path != "" && path != "-" {
			f, err := os.Open(path)
			if err != nil {
				jww.FATAL.Panicf("%+v", err)
			}
			defer f.Close()
			in = f
		}

		dumpEvents(in, viper.GetBool("json"))
	},
}

// dumpEvents parses one event per input line and prints its accessor view.
// Unparseable lines are logged and skipped; the dump keeps going.
func dumpEvents(in *os.File, asJSON bool) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		ev, err := events.Parse(line)
		if err != nil {
			jww.ERROR.Printf("Skipping line %d: %+v", lineNo, err)
			continue
		}

		if asJSON {
			fmt.Printf("%s\n", accessors.SerializeEvent(ev))
			continue
		}
		fmt.Println(describe(ev))
	}
	if err := scanner.Err(); err != nil {
		jww.FATAL.Panicf("%+v", err)
	}
}

// describe renders the accessor view of one event as a single line.
func describe(ev events.TimelineEvent) string {
	kind := "room"
	if accessors.IsStateEvent(ev) {
		kind = "state"
	}

	detail := accessors.Body(ev)
	switch {
	case accessors.CallType(ev) != "":
		detail = accessors.CallType(ev) + " call"
	case accessors.RoomName(ev) != "":
		detail = "room renamed to " + accessors.RoomName(ev)
	case accessors.RoomTopic(ev) != "":
		detail = "topic set to " + accessors.RoomTopic(ev)
	case accessors.Filename(ev) != "":
		detail = fmt.Sprintf("%s (%s, %d bytes)", accessors.Filename(ev),
			accessors.MimeType(ev), accessors.Filesize(ev))
	}

	label := accessors.MsgType(ev).String()
	if accessors.MsgType(ev) == events.MsgUnknown {
		label = ev.GetContent().EventType()
	}

	return fmt.Sprintf("[%s] %s %s %s: %s",
		accessors.OriginServerTS(ev).Format("2006-01-02 15:04:05.000"),
		kind, label, accessors.Sender(ev), detail)
}

func initLog(threshold uint, logPath string) {
	if logPath != "-" && logPath != "" {
		// Disable stdout output
		jww.SetStdoutOutput(ioutil.Discard)
		// Use log file
		logOutput, err := os.OpenFile(logPath,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err.Error())
		}
		jww.SetLogOutput(logOutput)
	}

	if threshold > 1 {
		jww.INFO.Printf("log level set to: TRACE")
		jww.SetStdoutThreshold(jww.LevelTrace)
		jww.SetLogThreshold(jww.LevelTrace)
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else if threshold == 1 {
		jww.INFO.Printf("log level set to: DEBUG")
		jww.SetStdoutThreshold(jww.LevelDebug)
		jww.SetLogThreshold(jww.LevelDebug)
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else {
		jww.INFO.Printf("log level set to: INFO")
		jww.SetStdoutThreshold(jww.LevelInfo)
		jww.SetLogThreshold(jww.LevelInfo)
	}
}

// init is the initialization function for Cobra which defines commands
// and flags.
func init() {
	rootCmd.PersistentFlags().UintP("logLevel", "v", 0,
		"Verbose mode for debugging")
	viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("logLevel"))

	rootCmd.PersistentFlags().StringP("log", "l", "-",
		"Path to the log output path (- is stdout)")
	viper.BindPFlag("log", rootCmd.PersistentFlags().Lookup("log"))

	rootCmd.Flags().StringP("file", "f", "-",
		"Newline-delimited event JSON to inspect (- is stdin)")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))

	rootCmd.Flags().BoolP("json", "j", false,
		"Reprint each event's wire encoding instead of the summary view")
	viper.BindPFlag("json", rootCmd.Flags().Lookup("json"))
}
