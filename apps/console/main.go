package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aulahq/console/core"
	"github.com/aulahq/console/services/logger"
	"github.com/aulahq/console/storage/restapi"
)

func main() {
	conf := core.NewConfig()
	std := log.New(os.Stderr, "", 0)

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewStdLogger(std, conf)
	}

	sess := loadSession()
	client := restapi.NewClient(conf, &sess, logger)

	cli := &commandLine{
		conf:    conf,
		log:     logger,
		client:  client,
		session: &sess,
	}
	if err := cli.run(os.Args); err != nil && err != errHelp {
		std.Fatal(err)
	}
}

// The session token lives in the user config dir between runs; the core only
// ever reads the session value built from it.

func sessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "aulaconsole", "token")
}

func loadSession() core.Session {
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return core.Session{}
	}
	return core.NewSession(strings.TrimSpace(string(data)))
}

func saveSession(sess core.Session) error {
	path := sessionPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(sess.Token), 0o600)
}

func clearSession() error {
	err := os.Remove(sessionPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
