package dashboard

import (
	"fmt"

	"github.com/c2h5oh/datasize"
)

// Y axis policy: the chart never shows less than MinAxisMiB, rounds the peak
// up to a whole MiB and leaves AxisHeadroom above it so a line sitting exactly
// on the bound is still drawn inside the plot. Labels start LabelStrideMiB
// apart; the stride doubles until there are at most MaxAxisLabels steps.
const (
	MinAxisMiB     = 10
	LabelStrideMiB = 2
	MaxAxisLabels  = 64
	AxisHeadroom   = datasize.KB
)

// YAxis returns the upper y bound in bytes and the MiB tick labels for a peak
// value in bytes.
func YAxis(peak uint64) (float64, []string) {
	mib := peak / uint64(datasize.MB)
	if peak%uint64(datasize.MB) != 0 {
		mib++
	}
	mib = max(mib, MinAxisMiB)

	bound := float64(mib)*float64(datasize.MB) + float64(AxisHeadroom)

	stride := uint64(LabelStrideMiB)
	for mib/stride > MaxAxisLabels {
		stride *= 2
	}

	labels := make([]string, 0, mib/stride+1)
	for v := uint64(0); v <= mib; v += stride {
		labels = append(labels, fmt.Sprintf("%d MiB", v))
	}
	return bound, labels
}

// XAxis returns the x bound and labels for a window of the given capacity.
func XAxis(capacity int) (float64, []string) {
	return float64(capacity), []string{"0", fmt.Sprintf("%d", capacity/2), fmt.Sprintf("%d", capacity)}
}
