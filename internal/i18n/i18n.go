// Package i18n holds every user-facing string of the review pipeline in both
// supported locales. Both variants existing for every key is a contract, not a
// convenience; i18n_test.go enforces it.
package i18n

// Locale is the two-value language enumeration threaded through the classifier
// request and all message selection.
type Locale string

const (
	ZH Locale = "zh"
	EN Locale = "en"
)

// Parse maps a raw language code to a Locale, defaulting to zh.
func Parse(s string) Locale {
	if s == string(EN) {
		return EN
	}
	return ZH
}

type Key string

const (
	KeyAnalyzeFailed    Key = "analyze_failed"
	KeyConnectionFailed Key = "connection_failed"
	KeyInvalidResponse  Key = "invalid_response"
	KeyAuthFailed       Key = "auth_failed"
	KeyBadImage         Key = "bad_image"
	KeyBusy             Key = "busy"
	KeySaveSuccess      Key = "save_success"
	KeySaveFailed       Key = "save_failed"
	KeyPhotoReceived    Key = "photo_received"
	KeyReviewPrompt     Key = "review_prompt"
	KeyCancelled        Key = "cancelled"
	KeyBtnSave          Key = "btn_save"
	KeyBtnCancel        Key = "btn_cancel"
	KeyStart            Key = "start"
)

var messages = map[Key]map[Locale]string{
	KeyAnalyzeFailed: {
		ZH: "分析失败，请重试",
		EN: "Analysis failed, please try again",
	},
	KeyConnectionFailed: {
		ZH: "⚠️ 无法连接到 AI 服务\n\n请检查：\n• 网络连接是否正常\n• 是否需要配置代理\n• 防火墙设置",
		EN: "⚠️ Cannot connect to AI service\n\nPlease check:\n• Internet connection\n• Proxy settings\n• Firewall configuration",
	},
	KeyInvalidResponse: {
		ZH: "⚠️ AI 返回了无效的响应\n\n请重试，如果问题持续请联系支持",
		EN: "⚠️ AI returned invalid response\n\nPlease try again, contact support if issue persists",
	},
	KeyAuthFailed: {
		ZH: "⚠️ API 密钥无效\n\n请检查环境变量 GEMINI_API_KEY",
		EN: "⚠️ Invalid API key\n\nPlease check GEMINI_API_KEY environment variable",
	},
	KeyBadImage: {
		ZH: "图片无法处理：格式不支持或文件过大",
		EN: "Cannot process the image: unsupported format or file too large",
	},
	KeyBusy: {
		ZH: "正在分析上一张图片，请稍候",
		EN: "Still analyzing the previous image, please wait",
	},
	KeySaveSuccess: {
		ZH: "保存成功！",
		EN: "Saved successfully!",
	},
	KeySaveFailed: {
		ZH: "保存失败",
		EN: "Failed to save",
	},
	KeyPhotoReceived: {
		ZH: "收到图片，正在识别…",
		EN: "Photo received, analyzing…",
	},
	KeyReviewPrompt: {
		ZH: "请核对识别结果，确认无误后保存到错题本",
		EN: "Review the result, then save it to your notebook",
	},
	KeyCancelled: {
		ZH: "已取消，未保存",
		EN: "Cancelled, nothing saved",
	},
	KeyBtnSave: {
		ZH: "保存",
		EN: "Save",
	},
	KeyBtnCancel: {
		ZH: "取消",
		EN: "Cancel",
	},
	KeyStart: {
		ZH: "拍一张题目照片发给我，我会识别并整理到你的错题本。\n命令：/lang zh|en，/stats",
		EN: "Send me a photo of a question and I will transcribe it into your mistake notebook.\nCommands: /lang zh|en, /stats",
	},
}

// T returns the message for a key in the given locale.
func T(loc Locale, key Key) string {
	byLocale, ok := messages[key]
	if !ok {
		return string(key)
	}
	if msg, ok := byLocale[loc]; ok {
		return msg
	}
	return byLocale[ZH]
}

// Keys lists every message key, for the completeness check.
func Keys() []Key {
	out := make([]Key, 0, len(messages))
	for k := range messages {
		out = append(out, k)
	}
	return out
}
