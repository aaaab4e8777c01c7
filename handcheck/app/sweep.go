package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rouhjp/rouh-mahjong-web-sub001/common/config"
	"github.com/rouhjp/rouh-mahjong-web-sub001/common/log"
	"github.com/rouhjp/rouh-mahjong-web-sub001/common/metrics"
	"github.com/rouhjp/rouh-mahjong-web-sub001/framework/game/engines/mahjong"
)

// Report 压测结果
type Report struct {
	RunID     string
	Hands     int
	Ready     int
	NineTiles int
	Shanten   map[int]int // 向听数 -> 手数
	Elapsed   time.Duration
	Load      *LoadInfo // 结束时的负载
}

func (r *Report) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "run %s: %d hands, %d ready, %d nine-tiles, shanten %v, %s\n",
		r.RunID, r.Hands, r.Ready, r.NineTiles, r.Shanten, r.Elapsed)
	if err != nil || r.Load == nil {
		return err
	}
	_, err = fmt.Fprintf(w, "load: %s\n", r.Load)
	return err
}

// Sweep 随机配 13 张手牌，统计听牌与向听数
func Sweep(ctx context.Context, conf *config.Config) (*Report, error) {
	if conf.Sweep.Hands <= 0 {
		return nil, fmt.Errorf("%w: sweep hands must be positive, got %d", mahjong.ErrInvalidArgument, conf.Sweep.Hands)
	}
	searcher, err := NewSearcher(conf)
	if err != nil {
		return nil, err
	}
	defer searcher.Close()

	if conf.MetricPort > 0 {
		metricsCtx, stopMetrics := context.WithCancel(ctx)
		metricsDone := make(chan struct{})
		go func() {
			defer close(metricsDone)
			log.Info("启动监控..., URL: http://localhost:%d/debug/statsviz/", conf.MetricPort)
			if err := metrics.Serve(metricsCtx, fmt.Sprintf("0.0.0.0:%d", conf.MetricPort)); err != nil {
				log.Error("监控服务退出: %v", err)
			}
		}()
		// 返回前关闭监控并等待端口释放
		defer func() {
			stopMetrics()
			<-metricsDone
		}()
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Shanten: make(map[int]int),
	}
	log.Info("sweep %s 开始, hands=%d seed=%d", report.RunID, conf.Sweep.Hands, conf.Sweep.Seed)

	stop := make(chan struct{})
	defer close(stop)
	if conf.Sweep.MonitorSeconds > 0 {
		go monitorLoad(report.RunID, time.Duration(conf.Sweep.MonitorSeconds)*time.Second, stop)
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(conf.Sweep.Seed))
	deck := mahjong.NewTileDeck(conf.Sweep.UseRedFives, rng)
	for report.Hands < conf.Sweep.Hands {
		if err := ctx.Err(); err != nil {
			log.Warn("sweep %s 中断, 已完成 %d 手", report.RunID, report.Hands)
			return report, err
		}
		hand, ok := deck.Draw(14)
		if !ok {
			deck = mahjong.NewTileDeck(conf.Sweep.UseRedFives, rng)
			continue
		}
		hand13, drawn := hand[:13], hand[13]
		if searcher.IsHandReady(hand13) {
			report.Ready++
		}
		if mahjong.IsNineTiles(hand13, drawn) {
			report.NineTiles++
		}
		report.Shanten[searcher.Shanten(hand13)]++
		report.Hands++
	}
	report.Elapsed = time.Since(start)
	report.Load = collectLoadInfo()
	log.Info("sweep %s 完成, ready=%d elapsed=%s", report.RunID, report.Ready, report.Elapsed)
	return report, nil
}
