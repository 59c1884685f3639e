package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY    = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS  = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS = 40002 // 400 - 無效的請求標頭
	INVALID_WEEK_START  = 40003 // 400 - 週起始日格式錯誤
	NO_ACTIVE_POSITIONS = 40004 // 400 - 場館未設定任何啟用職位
	NO_ACTIVE_EMPLOYEES = 40005 // 400 - 場館沒有在職員工

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED = 40100 // 401 - 未授權
	FORBIDDEN    = 40301 // 403 - 禁止訪問

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 40900 ~ 40999: 資源狀態衝突 (409 系列)
	SCHEDULE_RUN_IN_PROGRESS   = 40900 // 409 - 同一 (venue, week) 已有排班產程進行中
	SCHEDULE_ALREADY_PUBLISHED = 40901 // 409 - 該週排班已發布，自動產程不得覆蓋

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停 (維護模式)

	// 50200 ~ 50499: 外部請求錯誤 (502 504 系列)
	EXTERNAL_REQUEST_ERROR = 50200 // 502 - 外部 API 請求錯誤
	GATEWAY_TIMEOUT        = 50400 // 504 - 外部 API 超時
)
