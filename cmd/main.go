package main

import (
	"context"
	"fmt"
	"net/netip"
	"os"

	"github.com/wlynxg/ifaddr/core/config"
	"github.com/wlynxg/ifaddr/core/ifconf"
	mlog "github.com/wlynxg/ifaddr/pkgs/log"

	"github.com/gogf/gf/v2/os/gcmd"
	"github.com/gogf/gf/v2/os/gctx"
	"github.com/pkg/errors"
)

var configArg = gcmd.Argument{
	Name:  "config",
	Short: "c",
	Brief: "path to the config file",
}

var root = &gcmd.Command{
	Name:  "ifaddr",
	Usage: "ifaddr COMMAND [ARGUMENT]",
	Brief: "read or assign the IPv4 address of a network interface",
}

var getCmd = &gcmd.Command{
	Name:      "get",
	Usage:     "ifaddr get INTERFACE",
	Brief:     "print the current IPv4 address of INTERFACE",
	Arguments: []gcmd.Argument{configArg},
	Func:      runGet,
}

var setCmd = &gcmd.Command{
	Name:      "set",
	Usage:     "ifaddr set INTERFACE ADDRESS",
	Brief:     "assign the IPv4 ADDRESS to INTERFACE (requires CAP_NET_ADMIN)",
	Arguments: []gcmd.Argument{configArg},
	Func:      runSet,
}

func main() {
	if err := root.AddCommand(getCmd, setCmd); err != nil {
		panic(err)
	}
	if err := root.RunWithError(gctx.New()); err != nil {
		fmt.Fprintf(os.Stderr, "ifaddr: %v\n", err)
		os.Exit(1)
	}
}

func runGet(ctx context.Context, parser *gcmd.Parser) error {
	cfg, log, err := setup(parser)
	if err != nil {
		return err
	}
	name, err := interfaceName(parser, cfg)
	if err != nil {
		return err
	}

	conn, err := ifconf.Dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	addr, err := conn.GetAddr(name)
	if err != nil {
		return err
	}
	log.Debugf("interface %s has address %s", name, addr)
	fmt.Println(addr)
	return nil
}

func runSet(ctx context.Context, parser *gcmd.Parser) error {
	cfg, log, err := setup(parser)
	if err != nil {
		return err
	}
	name, err := interfaceName(parser, cfg)
	if err != nil {
		return err
	}
	addr, err := parseIPv4(parser.GetArg(2).String())
	if err != nil {
		return err
	}

	log.Debugf("opening control socket")
	conn, err := ifconf.Dial()
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.SetAddr(name, addr); err != nil {
		return err
	}
	log.Infof("interface %s set to address %s", name, addr)
	return nil
}

func setup(parser *gcmd.Parser) (*config.Config, *mlog.Logger, error) {
	cfg, err := config.Load(parser.GetOpt("config").String())
	if err != nil {
		return nil, nil, errors.Wrap(err, "load config")
	}
	mlog.SetOutputTypes(cfg.LogConfigs...)
	return cfg, mlog.New("ifaddr"), nil
}

// interfaceName takes the interface from the first positional argument
// and falls back to the configured default.
func interfaceName(parser *gcmd.Parser, cfg *config.Config) (string, error) {
	name := parser.GetArg(1).String()
	if name == "" {
		name = cfg.Interface
	}
	if name == "" {
		return "", errors.New("no interface given")
	}
	return name, nil
}

func parseIPv4(s string) (netip.Addr, error) {
	if s == "" {
		return netip.Addr{}, errors.New("no address given")
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, errors.Wrapf(err, "invalid address %q", s)
	}
	if !addr.Is4() {
		return netip.Addr{}, errors.Errorf("invalid address %q: only IPv4 can be assigned", s)
	}
	return addr, nil
}
