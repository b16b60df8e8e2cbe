package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"portfolio/internal/ai"
	"portfolio/internal/config"
	"portfolio/internal/model"
	"portfolio/internal/profile"
	"portfolio/internal/server/middleware"
	"portfolio/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(baseURL, apiKey string) *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			Provider: "openrouter",
			APIKey:   apiKey,
			Model:    "mistralai/mistral-7b-instruct:free",
			BaseURL:  baseURL,
			Referer:  "https://dikshantrajput.dev",
			Title:    "Dikshant Portfolio AI Chat",
			Timeout:  2 * time.Second,
			Options:  config.AIOptionsConfig{Temperature: 0.7, MaxTokens: 500},
		},
		Relay: config.RelayConfig{MaxMessageChars: 4000, MaxBodyBytes: 1 << 10},
	}
}

// newChatEngine 通过 HTTPCompleter 把 /api/chat 接到 upstream
func newChatEngine(cfg *config.Config) *gin.Engine {
	var completer ai.Completer
	if cfg.AI.Configured() {
		completer = ai.NewHTTPCompleter(&cfg.AI, nil)
	}
	svc := service.NewChatService(cfg, completer, "You are a test assistant.", nil)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.POST("/api/chat", middleware.BodyLimit(cfg.Relay.MaxBodyBytes), NewChatHandler(svc).Chat)
	return engine
}

func postChat(engine *gin.Engine, body string) (int, map[string]string) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	out := map[string]string{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestChatHandler(t *testing.T) {
	Convey("POST /api/chat", t, func() {
		var (
			calls    int32
			received struct {
				Model    string           `json:"model"`
				Messages []model.ChatTurn `json:"messages"`
			}
			status = http.StatusOK
			reply  = `{"choices":[{"message":{"role":"assistant","content":"I build AI apps."}}]}`
		)
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &received)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, reply)
		}))
		defer upstream.Close()

		engine := newChatEngine(testConfig(upstream.URL, "sk-test"))

		Convey("成功返回 {response}", func() {
			code, out := postChat(engine, `{"message":"What do you do?","history":[{"role":"user","content":"Hi"},{"role":"assistant","content":"Hello!"}]}`)
			So(code, ShouldEqual, http.StatusOK)
			So(out["response"], ShouldEqual, "I build AI apps.")

			So(received.Model, ShouldEqual, "mistralai/mistral-7b-instruct:free")
			So(received.Messages, ShouldHaveLength, 4)
			So(received.Messages[0].Role, ShouldEqual, model.RoleSystem)
			So(received.Messages[3], ShouldResemble, model.ChatTurn{Role: model.RoleUser, Content: "What do you do?"})
		})

		Convey("缺少 message 返回 400", func() {
			code, out := postChat(engine, `{"history":[]}`)
			So(code, ShouldEqual, http.StatusBadRequest)
			So(out["error"], ShouldEqual, service.MsgMessageMissing)
			So(atomic.LoadInt32(&calls), ShouldEqual, 0)
		})

		Convey("message 类型错误返回 400", func() {
			code, out := postChat(engine, `{"message":123}`)
			So(code, ShouldEqual, http.StatusBadRequest)
			So(out["error"], ShouldEqual, service.MsgMessageMissing)
		})

		Convey("请求体不是 JSON 对象返回 400", func() {
			code, out := postChat(engine, `not json`)
			So(code, ShouldEqual, http.StatusBadRequest)
			So(out["error"], ShouldEqual, service.MsgInvalidBody)
		})

		Convey("请求体过大返回 400", func() {
			code, out := postChat(engine, `{"message":"`+strings.Repeat("a", 2<<10)+`"}`)
			So(code, ShouldEqual, http.StatusBadRequest)
			So(out["error"], ShouldEqual, service.MsgInvalidBody)
			So(atomic.LoadInt32(&calls), ShouldEqual, 0)
		})

		Convey("上游限流时透传 429 和错误信息", func() {
			status = http.StatusTooManyRequests
			reply = `{"error":{"message":"Rate limit exceeded","code":429}}`

			code, out := postChat(engine, `{"message":"hi"}`)
			So(code, ShouldEqual, http.StatusTooManyRequests)
			So(out["error"], ShouldEqual, "Rate limit exceeded")
		})

		Convey("上游 500 且无错误信息时使用通用文案", func() {
			status = http.StatusInternalServerError
			reply = `oops`

			code, out := postChat(engine, `{"message":"hi"}`)
			So(code, ShouldEqual, http.StatusInternalServerError)
			So(out["error"], ShouldEqual, service.MsgUpstreamFailed)
		})

		Convey("choices 为空返回 502", func() {
			reply = `{"choices":[]}`

			code, out := postChat(engine, `{"message":"hi"}`)
			So(code, ShouldEqual, http.StatusBadGateway)
			So(out["error"], ShouldEqual, service.MsgBadFormat)
		})

		Convey("上游不可达返回 503", func() {
			down := httptest.NewServer(http.NotFoundHandler())
			down.Close()

			code, out := postChat(newChatEngine(testConfig(down.URL, "sk-test")), `{"message":"hi"}`)
			So(code, ShouldEqual, http.StatusServiceUnavailable)
			So(out["error"], ShouldEqual, service.MsgUnreachable)
		})

		Convey("未配置 API Key 返回 503 且不访问上游", func() {
			unconfigured := newChatEngine(testConfig(upstream.URL, ""))

			code, out := postChat(unconfigured, `{"message":"hi"}`)
			So(code, ShouldEqual, http.StatusServiceUnavailable)
			So(out["error"], ShouldEqual, service.MsgNotConfigured)

			code, _ = postChat(unconfigured, `not json`)
			So(code, ShouldEqual, http.StatusServiceUnavailable)
			So(atomic.LoadInt32(&calls), ShouldEqual, 0)
		})
	})
}

func TestHealthHandler(t *testing.T) {
	Convey("健康检查", t, func() {
		serve := func(h *HealthHandler, path string) *httptest.ResponseRecorder {
			engine := gin.New()
			engine.GET("/api/health", h.Health)
			engine.GET("/ready", h.Ready)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			return w
		}

		w := serve(NewHealthHandler(false), "/api/health")
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldEqual, `{"status":"ok"}`)

		So(serve(NewHealthHandler(true), "/ready").Code, ShouldEqual, http.StatusOK)
		So(serve(NewHealthHandler(false), "/ready").Code, ShouldEqual, http.StatusServiceUnavailable)
	})
}

func TestProfileHandler(t *testing.T) {
	Convey("GET /api/projects", t, func() {
		engine := gin.New()
		engine.GET("/api/projects", NewProfileHandler(profile.Default).Projects)

		get := func(url string) (int, ProjectList) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
			var out ProjectList
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			return w.Code, out
		}

		code, all := get("/api/projects")
		So(code, ShouldEqual, http.StatusOK)
		So(all.Projects, ShouldHaveLength, len(profile.Default.Projects))

		code, featured := get("/api/projects?featured=true")
		So(code, ShouldEqual, http.StatusOK)
		So(featured.Projects, ShouldHaveLength, 3)

		code, _ = get("/api/projects?featured=maybe")
		So(code, ShouldEqual, http.StatusBadRequest)
	})
}
