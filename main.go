package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ly061/AiPortalDemo/internal/buildinfo"
	"github.com/ly061/AiPortalDemo/internal/cmdregistry"
	cleancmd "github.com/ly061/AiPortalDemo/internal/commands/clean"
	depscmd "github.com/ly061/AiPortalDemo/internal/commands/deps"
	networkcmd "github.com/ly061/AiPortalDemo/internal/commands/network"
	preflightcmd "github.com/ly061/AiPortalDemo/internal/commands/preflight"
	upcmd "github.com/ly061/AiPortalDemo/internal/commands/up"
	"github.com/ly061/AiPortalDemo/internal/config"
)

func usage() {
	fmt.Fprintf(os.Stderr, `portalctl — launcher for the Testing Tools Portal
Usage: portalctl [flags] [command]

With no command, runs "up".

Commands:
  up          check python, prepare venv, install deps, start the portal
  preflight   host checks: python, pip, entry point, manifest, venv, port
  deps        run the dependency check/install step alone
  network     print the access URLs without starting anything
  clean       remove the virtual environment
  version     print build version

Flags:
  --port N            serving port (default %d)
  --entrypoint FILE   app entry point (default %s)
  --config PATH       launcher config file (default ./portal.yaml)
  --dry-run           print commands instead of executing them

Environment:
  PORTAL_CONFIG     config file path (overridden by --config)
  PORTAL_DEBUG=1    print executed commands
  PORTAL_LOG_LEVEL  logrus level for diagnostics (default warning)
`, config.DefaultPort, config.DefaultEntrypoint)
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if v := strings.TrimSpace(os.Getenv("PORTAL_LOG_LEVEL")); v != "" {
		if level, err := log.ParseLevel(v); err == nil {
			log.SetLevel(level)
		} else {
			log.Warnf("invalid log level %s, defaulting to warning", v)
		}
	}

	var dryRun bool
	var port int
	var entrypoint string

	args := os.Args[1:]
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch a {
		case "--port":
			if i+1 >= len(args) {
				die("--port requires value")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 1 || n > 65535 {
				die("--port must be a valid TCP port")
			}
			port = n
			i++
		case "--entrypoint":
			if i+1 >= len(args) {
				die("--entrypoint requires value")
			}
			entrypoint = args[i+1]
			i++
		case "--config":
			if i+1 >= len(args) {
				die("--config requires value")
			}
			_ = os.Setenv("PORTAL_CONFIG", args[i+1])
			i++
		case "--dry-run":
			dryRun = true
		case "-h", "--help", "help":
			usage()
			return
		default:
			out = append(out, a)
		}
	}
	args = out

	cfg, path, err := config.Read()
	if err != nil {
		die(fmt.Sprintf("config %s: %v", path, err))
	}
	if port > 0 {
		cfg.Port = port
	}
	if strings.TrimSpace(entrypoint) != "" {
		cfg.Entrypoint = entrypoint
	}
	if path != "" {
		log.WithField("path", path).Debug("loaded launcher config")
	}

	cmd := "up"
	sub := []string{}
	if len(args) > 0 {
		cmd = args[0]
		sub = args[1:]
	}
	if cmd == "version" {
		fmt.Println(buildinfo.String())
		return
	}

	registry := cmdregistry.New()
	upcmd.Register(registry)
	preflightcmd.Register(registry)
	depscmd.Register(registry)
	networkcmd.Register(registry)
	cleancmd.Register(registry)

	ctx := &cmdregistry.Context{
		DryRun: dryRun,
		Args:   sub,
		Cfg:    cfg,
	}
	handler, ok := registry.Lookup(cmd)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(2)
	}
	if err := handler(ctx); err != nil {
		die(err.Error())
	}
}

func die(msg string) { fmt.Fprintln(os.Stderr, msg); os.Exit(2) }
