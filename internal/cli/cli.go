package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	lerrors "github.com/kanopy-platform/json2list/pkg/errors"
	"github.com/kanopy-platform/json2list/pkg/iplister"
	"github.com/kanopy-platform/json2list/pkg/iplister/decoder/zscaler"
	"github.com/kanopy-platform/json2list/pkg/iplister/reader"
	"github.com/kanopy-platform/json2list/pkg/output"
)

const usage = `Usage: json2list <input> [output_filename]
  <input> can be either a URL or a local file path
`

var errUsage = errors.New("expected <input> and an optional [output_filename]")

// reportedError marks an error whose message was already printed for the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// IsReported reports whether err was already printed by the command.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

type RootCommand struct {
	v   *viper.Viper
	log *zap.Logger
}

func NewRootCommand() *cobra.Command {
	root := &RootCommand{
		v:   viper.New(),
		log: zap.NewNop(),
	}

	cmd := &cobra.Command{
		Use:               "json2list <input> [output_filename]",
		Short:             "Extract CIDR blocks from a ZIA or ZPA JSON document",
		Args:              root.args,
		PersistentPreRunE: root.persistentPreRunE,
		RunE:              root.runE,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cmd.PersistentFlags().String("log-level", "info", "Configure log level")
	cmd.PersistentFlags().Duration("timeout", 0, "Timeout for loading the input, 0 disables it")
	cmd.PersistentFlags().Bool("validate", false, "Fail when an extracted value is not a valid CIDR")
	cmd.PersistentFlags().String("user", "", "Basic auth username for URL inputs")
	cmd.PersistentFlags().String("password", "", "Basic auth password for URL inputs")

	return cmd
}

func (c *RootCommand) args(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprint(cmd.OutOrStdout(), usage)
		return &reportedError{err: errUsage}
	}

	return nil
}

func (c *RootCommand) persistentPreRunE(cmd *cobra.Command, args []string) error {
	// bind flags to viper
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.SetEnvPrefix("json2list")
	c.v.AutomaticEnv()

	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// set log level
	logLevel, err := zapcore.ParseLevel(c.v.GetString("log-level"))
	if err != nil {
		return err
	}

	c.log = newLogger(cmd, logLevel).With(zap.Bool("validate", c.v.GetBool("validate")))

	return nil
}

// logs go to stderr so stdout only carries results
func newLogger(cmd *cobra.Command, level zapcore.Level) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
		level,
	)

	return zap.New(core)
}

func (c *RootCommand) runE(cmd *cobra.Command, args []string) error {
	defer func() { _ = c.log.Sync() }()

	input := args[0]
	log := c.log.With(zap.String("input", input))

	lister := iplister.New(
		reader.ForSource(input, reader.Options{
			Username: c.v.GetString("user"),
			Password: c.v.GetString("password"),
		}),
		zscaler.New(zscaler.WithLogger(log)),
		iplister.WithTimeout(c.v.GetDuration("timeout")),
		iplister.WithValidation(c.v.GetBool("validate")),
		iplister.WithLogger(log),
	)

	log.Debug("loading json data")
	cidrs, err := lister.GetIPs(cmd.Context())
	if err != nil {
		if lerrors.IsLoadError(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "Error loading JSON data: %v\n", err)
			return &reportedError{err: err}
		}
		return err
	}

	if len(args) == 2 && args[1] != "" {
		log.Debug("writing cidr blocks", zap.String("output", args[1]), zap.Int("count", len(cidrs)))
		return output.WriteFile(args[1], cidrs, cmd.OutOrStdout())
	}

	return output.Write(cmd.OutOrStdout(), cidrs)
}
