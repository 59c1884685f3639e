package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanCompressMiddleware TraceSpanName = "compress_middleware"
	SpanScheduleRun        TraceSpanName = "schedule_run"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal      MetricName = "requests_total"
	MetricHttpRequestDuration    MetricName = "request_duration_seconds"
	MetricScheduleRunsTotal      MetricName = "schedule_runs_total"
	MetricScheduleRunDuration    MetricName = "schedule_run_duration_seconds"
	MetricShiftsWrittenTotal     MetricName = "shifts_written_total"
	MetricUnderstaffedWavesTotal MetricName = "understaffed_waves_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelOutcome  MetricLabelName = "outcome"
	MetricLabelVenue    MetricLabelName = "venue"
	MetricLabelPosition MetricLabelName = "position"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

type TraceRequestLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	Path        string `trace:"http.request.path"`
	Method      string `trace:"http.request.method"`
	ProjectName string `trace:"project.name"`
	Body        string `trace:"http.request.body,omitempty"`
	UserAgent   string `trace:"http.request.user_agent"`
	Version     string `trace:"log.version"`
	RequestTS   string `trace:"http.request_ts"`
	LoggedAt    string `trace:"http.logged_at"`
}

// 排班產生流程的 span 屬性
type TraceScheduleRunMeta struct {
	RunID           string  `trace:"schedule.run_id"`
	VenueID         string  `trace:"schedule.venue_id"`
	WeekStart       string  `trace:"schedule.week_start"`
	Save            bool    `trace:"schedule.save"`
	Mode            string  `trace:"schedule.calibration_mode,omitempty"`
	OpenDays        int     `trace:"schedule.open_days,omitempty"`
	ShiftCount      int     `trace:"schedule.shift_count,omitempty"`
	TotalHours      float64 `trace:"schedule.total_hours,omitempty"`
	TotalCost       float64 `trace:"schedule.total_cost,omitempty"`
	Understaffed    int     `trace:"schedule.understaffed_slots,omitempty"`
	Error           *string `trace:"error,omitempty"`
}

// 供 Redis 產生鎖 Acquire / Release 使用
type TraceRunLockMeta struct {
	VenueID   string `trace:"lock.venue_id"`
	WeekStart string `trace:"lock.week_start"`
	TTLSec    int64  `trace:"lock.ttl_sec"`
	Acquired  bool   `trace:"lock.acquired"`
	Op        string `trace:"lock.op"` // "acquire" / "release"
}
