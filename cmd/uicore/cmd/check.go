package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:    "check",
		Summary: "Validate a scene file and the configuration",
		Details: `Validate a scene file and the uicore.yaml that applies to it.

Reports the first problem found, naming the offending node by its path
in the scene (for example nodes[0].children[2]).`,
		Usage:    "uicore check <scene.yaml> [--config DIR]",
		Examples: []string{"uicore check scene.yaml", "uicore check scene.yaml --config ./settings"},
		Run:      runCheck,
	})
}

func runCheck(args []string) error {
	opts, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	sess, err := openSession(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "ok: %d nodes, schema %s, screen %gx%g\n",
		sess.scene.Count(), sess.cfg.Schema, sess.ui.ScreenSize().X, sess.ui.ScreenSize().Y)
	return nil
}
