package ai

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseCompletion(t *testing.T) {
	Convey("ParseCompletion 取出 choices[0].message.content", t, func() {
		Convey("正常响应", func() {
			content, err := ParseCompletion([]byte(`{"id":"x","choices":[{"message":{"role":"assistant","content":"Python, Java, ML"}}]}`))
			So(err, ShouldBeNil)
			So(content, ShouldEqual, "Python, Java, ML")
		})

		Convey("只看第一个 choice", func() {
			content, err := ParseCompletion([]byte(`{"choices":[{"message":{"content":"first"}},{"message":{"content":"second"}}]}`))
			So(err, ShouldBeNil)
			So(content, ShouldEqual, "first")
		})

		malformed := map[string]string{
			"空对象":               `{}`,
			"choices 为空数组":      `{"choices":[]}`,
			"choices 为 null":    `{"choices":null}`,
			"choices 不是数组":      `{"choices":{"message":{"content":"hi"}}}`,
			"缺少 message":        `{"choices":[{}]}`,
			"message 不是对象":      `{"choices":[{"message":"hi"}]}`,
			"content 为空":        `{"choices":[{"message":{"content":""}}]}`,
			"content 不是字符串":     `{"choices":[{"message":{"content":42}}]}`,
			"choices[0] 为 null": `{"choices":[null]}`,
			"不是 JSON":           `<html>bad gateway</html>`,
			"JSON 数组":           `[1,2,3]`,
		}
		for name, body := range malformed {
			body := body
			Convey("格式错误: "+name, func() {
				content, err := ParseCompletion([]byte(body))
				So(content, ShouldBeEmpty)
				So(errors.Is(err, ErrMalformedResponse), ShouldBeTrue)
			})
		}
	})
}

func TestParseUpstreamError(t *testing.T) {
	Convey("parseUpstreamError 提取上游错误信息", t, func() {
		So(parseUpstreamError([]byte(`{"error":{"message":"rate limited","code":429}}`)), ShouldEqual, "rate limited")
		So(parseUpstreamError([]byte(`{"error":"model not found"}`)), ShouldEqual, "model not found")
		So(parseUpstreamError([]byte(`{"error":{"code":"x"}}`)), ShouldBeEmpty)
		So(parseUpstreamError([]byte(`{"detail":"nope"}`)), ShouldBeEmpty)
		So(parseUpstreamError([]byte(`upstream exploded`)), ShouldBeEmpty)
	})

	Convey("过长的错误信息被截断", t, func() {
		long := make([]byte, 1000)
		for i := range long {
			long[i] = 'a'
		}
		msg := parseUpstreamError([]byte(`{"error":{"message":"` + string(long) + `"}}`))
		So(len([]rune(msg)), ShouldEqual, maxUpstreamMessage+1)
	})
}
