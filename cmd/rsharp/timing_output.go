package main

import (
	"fmt"
	"io"
	"time"

	"rsharp/internal/buildpipeline"
	"rsharp/internal/observ"
)

func printStageTimings(out io.Writer, timings buildpipeline.Timings, includeBuilt bool) {
	if out == nil {
		return
	}
	if timings.Has(buildpipeline.StageParse) {
		fmt.Fprintf(out, "parsed %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageParse)))
	}
	if timings.Has(buildpipeline.StageBind) {
		fmt.Fprintf(out, "bound %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageBind)))
	}
	if timings.Has(buildpipeline.StageGenerate) {
		fmt.Fprintf(out, "generated %.1f ms\n", toMillis(timings.Duration(buildpipeline.StageGenerate)))
	}
	if includeBuilt && (timings.Has(buildpipeline.StageEmit) || timings.Has(buildpipeline.StageLink)) {
		built := timings.Sum(buildpipeline.StageEmit, buildpipeline.StageLink)
		fmt.Fprintf(out, "built %.1f ms\n", toMillis(built))
	}
}

func printReport(out io.Writer, report observ.Report) {
	for _, p := range report.Phases {
		if p.Note != "" {
			fmt.Fprintf(out, "%s %.1f ms (%s)\n", p.Name, p.DurationMS, p.Note)
			continue
		}
		fmt.Fprintf(out, "%s %.1f ms\n", p.Name, p.DurationMS)
	}
	fmt.Fprintf(out, "total %.1f ms\n", report.TotalMS)
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
