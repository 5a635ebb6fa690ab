package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	StatsToolCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_succeeded",
		Help:         "stats_tool_calls_succeeded provides total tool calls succeeded",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_failed",
		Help:         "stats_tool_calls_failed provides total tool calls failed",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsNotFound = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_not_found",
		Help:         "stats_tool_calls_not_found provides total calls for unknown tools",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsPanicked = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_panicked",
		Help:         "stats_tool_calls_panicked provides total tool calls recovered from panic",
		RequiredTags: []string{"tool"},
	}

	// StatsImagesSaved counts images written to disk, tagged by source and format
	StatsImagesSaved = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_images_saved",
		Help:         "stats_images_saved provides total images saved to disk",
		RequiredTags: []string{"source", "format"},
	}

	StatsClipboardEmpty = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_clipboard_empty",
		Help:         "stats_clipboard_empty provides total clipboard reads without an image",
		RequiredTags: []string{"tool"},
	}
)

// Perf
var (
	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}

	PerfScreenCapture = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_screen_capture",
		Help:         "perf_screen_capture provides duration of screen capture",
		RequiredTags: []string{"mode"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfScreenCapture,
	&PerfToolCall,
	&StatsClipboardEmpty,
	&StatsImagesSaved,
	&StatsToolCallsFailed,
	&StatsToolCallsNotFound,
	&StatsToolCallsPanicked,
	&StatsToolCallsSucceeded,
}
