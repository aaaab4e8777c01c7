package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rouhjp/rouh-mahjong-web-sub001/common/config"
	"github.com/rouhjp/rouh-mahjong-web-sub001/common/log"
	"github.com/rouhjp/rouh-mahjong-web-sub001/handcheck/app"
)

var (
	configFile string
	logLevel   string
	metricPort int
	hands      int
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "handcheck",
	Short: "手牌检查工具",
	Long:  `手牌检查工具：听牌、和了牌、拆解、鸣牌选择与随机配牌压测`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.InitConfig(configFile)
		level := config.Current().Log.Level
		if cmd.Flags().Changed("logLevel") || level == "" {
			level = logLevel
		}
		log.InitLog(config.Current().AppName, level)
		log.Debug("配置文件: %+v", *config.Current())
	},
}

var readyCmd = &cobra.Command{
	Use:   "ready <tiles>",
	Short: "听牌判断：和了牌与可暗杠的牌",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Ready(cmd.OutOrStdout(), args[0])
	},
}

var arrangeCmd = &cobra.Command{
	Use:   "arrange <tiles> <tile>",
	Short: "和牌判断与全部拆法",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Arrange(cmd.OutOrStdout(), args[0], args[1])
	},
}

var discardCmd = &cobra.Command{
	Use:   "discard <tiles>",
	Short: "打出哪张可以听牌",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := app.NewSearcher(config.Current())
		if err != nil {
			return err
		}
		defer s.Close()
		return app.Discard(cmd.OutOrStdout(), s, args[0])
	},
}

var callsCmd = &cobra.Command{
	Use:   "calls <tiles> <discarded>",
	Short: "吃、碰、明杠的可选组合",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Calls(cmd.OutOrStdout(), args[0], args[1])
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "随机配牌压测",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := *config.Current()
		if cmd.Flags().Changed("metricPort") {
			conf.MetricPort = metricPort
		}
		if cmd.Flags().Changed("hands") {
			conf.Sweep.Hands = hands
		}
		if cmd.Flags().Changed("seed") {
			conf.Sweep.Seed = seed
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		report, err := app.Sweep(ctx, &conf)
		if err != nil {
			return err
		}
		return report.Print(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "resource", "", "resource file, defaults are used when empty")
	rootCmd.PersistentFlags().StringVar(&logLevel, "logLevel", "info", "log level: debug, info, warn, error")

	sweepCmd.Flags().IntVar(&metricPort, "metricPort", 0, "statsviz port, 0 disables it")
	sweepCmd.Flags().IntVar(&hands, "hands", 10000, "number of hands to deal")
	sweepCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	rootCmd.AddCommand(readyCmd, arrangeCmd, discardCmd, callsCmd, sweepCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error happen: %v", err)
		os.Exit(1)
	}
}
