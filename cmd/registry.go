package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"greenearth.GO/core/registry"
)

// Register queues an extension command for Apply. Names follow the
// "group:action" form the built-in commands use (catalog:plants,
// sessions:sweep) and must not clash with another command. Panics after Apply.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	name := c.Name()
	if !strings.Contains(name, ":") {
		panic(fmt.Sprintf("cmd/registry: %q is not a group:action name", name))
	}
	if existing, _, err := rootCmd.Find([]string{name}); err == nil && existing != rootCmd {
		panic("cmd/registry: duplicate command " + name)
	}
	list := registered()
	for _, r := range list {
		if r.Name() == name {
			panic("cmd/registry: duplicate command " + name)
		}
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(list, c))
}

func registered() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Apply attaches registered commands to the root in name order and locks the
// registry. Calling it again is a no-op.
func Apply() {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		return
	}
	list := registered()
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	rootCmd.AddCommand(list...)
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
