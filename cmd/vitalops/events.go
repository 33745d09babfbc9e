package main

import (
	"context"
	"fmt"
	"io"
	"time"

	commoncfg "github.com/JaiMadhav/VitalOps/common/config"
	commonredis "github.com/JaiMadhav/VitalOps/common/redis"

	"github.com/spf13/cobra"
)

var (
	eventsStream string
	eventsCount  int64
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent snapshot events from the Redis stream",
	Long: `Read the most recent entries of the snapshot event stream published by vitalops-server.
Redis connection settings come from REDIS_ADDR, REDIS_PASSWORD and REDIS_DB.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := commoncfg.RedisConfig{Addr: "localhost:6379"}
		cfg.LoadFromEnv("REDIS")

		client := commonredis.NewRedisClient(&cfg)
		defer commonredis.Close(client)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		msgs, err := commonredis.ReadRecent(ctx, client, eventsStream, eventsCount)
		if err != nil {
			return fmt.Errorf("failed to read stream %s: %w", eventsStream, err)
		}
		renderEvents(cmd.OutOrStdout(), eventsStream, msgs)
		return nil
	},
}

func renderEvents(w io.Writer, stream string, msgs []commonredis.StreamMessage) {
	fmt.Fprintf(w, "\n%s\n", cyan("=== Events: "+stream+" ==="))
	if len(msgs) == 0 {
		fmt.Fprintf(w, "  %s\n\n", gray("No events"))
		return
	}
	for _, m := range msgs {
		fmt.Fprintf(w, "  %s %s %s\n", gray(m.ID), yellow(m.Values["type"]), m.Values["timestamp"])
		if data, ok := m.Values["data"]; ok {
			fmt.Fprintf(w, "    %v\n", data)
		}
	}
	fmt.Fprintln(w)
}

func init() {
	eventsCmd.Flags().StringVar(&eventsStream, "stream", "vitalops:events", "stream name")
	eventsCmd.Flags().Int64VarP(&eventsCount, "count", "n", 10, "number of events to show")
	rootCmd.AddCommand(eventsCmd)
}
