package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// confCommand 設定確認・ベース設定ファイル出力用
func confCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "conf",
		Short: "Print loaded config variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := yaml.Marshal(c)
			if err != nil {
				return fmt.Errorf("unable to marshal config to YAML: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(bs)
			return err
		},
	}
}
