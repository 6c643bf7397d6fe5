// mongoctl quản lý MongoDB replica set local cho môi trường phát triển.
// `mongoctl up` đảm bảo một node PRIMARY chạy trên cổng cố định trước khi
// server khởi động.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"farm_market/internal/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mongoctl",
		Short: "Quản lý MongoDB replica set local",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Khởi động mongod và đảm bảo replica set PRIMARY",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := bootstrap.LoadOptions()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			if err := bootstrap.Up(ctx, opts); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"port":    opts.Port,
				"replSet": opts.ReplSet,
				"db":      opts.DBName,
			}).Info("mongoctl: MongoDB sẵn sàng")
			return nil
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Dừng mongod đang chạy trên cổng cấu hình",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := bootstrap.LoadOptions()
			if err != nil {
				return err
			}
			bootstrap.FreePort(opts)
			logrus.WithField("port", opts.Port).Info("mongoctl: Đã dừng mongod")
			return nil
		},
	}

	rootCmd.AddCommand(upCmd, downCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
