package constant

// Prompts sent to the judge. The game is Japanese ōgiri, so the wording stays
// in Japanese end to end.

const (
	EvaluateAnswerSystemPrompt = "大喜利の回答を0〜10点で評価してください。面白さ、意外性、的確さを総合的に判断してください。数字のみを返してください。"

	GenerateTopicSystemPrompt = "面白い大喜利のお題を考えてください。短く、シンプルで、多様な回答が可能なお題にしてください。お題のみを返してください。"
	GenerateTopicUserPrompt   = "大喜利のお題を1つ考えてください。例: 「AIが人間に勝ったときの一言」「最強の乗り物の名前とその特徴」など"

	ReviewCommentSystemPromptFormat = "大喜利の回答に対する短いレビューコメントを書いてください。この回答は%d点（10点満点）です。"
	ReviewCommentUserPromptFormat   = "お題: %s\n回答: %s\n\n50文字以内で簡潔なレビューを書いてください。"
)

// Fallbacks returned when the judge is unreachable or replies garbage.
// Submissions must never fail because judging is down.
const (
	FallbackScore         = 0
	FallbackTopic         = "一番美味しい食べ物の意外な使い方は？"
	FallbackReviewComment = "面白い回答ですね！"
)

// Error messages surfaced through the API envelope.
const (
	ErrMsgTopicNotFound    = "トピックが見つかりません"
	ErrMsgAnswerNotFound   = "回答が見つかりません"
	ErrMsgTopicInactive    = "このトピックは現在アクティブではありません"
	ErrMsgTopicContentReq  = "トピックの内容は必須です"
	ErrMsgAnswerContentReq = "回答の内容は必須です"
	ErrMsgTopicIdReq       = "トピックIDは必須です"
	ErrMsgTopicIdQueryReq  = "topicIdクエリパラメータは必須です"
	ErrMsgIsActiveReq      = "isActiveは必須かつboolean型である必要があります"
	ErrMsgUnsupportedAct   = "サポートされていないアクションです。\"select\"のみが有効です"
	ErrMsgUnauthorized     = "認証エラー"
	ErrMsgUnknown          = "不明なエラーが発生しました"
)
