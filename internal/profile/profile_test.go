package profile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSystemPrompt(t *testing.T) {
	Convey("SystemPrompt 用简历数据渲染提示词", t, func() {
		text, err := Default.SystemPrompt(context.Background())
		So(err, ShouldBeNil)

		So(text, ShouldStartWith, "You are an AI assistant for Dikshant Rajput's portfolio website.")
		So(text, ShouldContainSubstring, "- Email: dikshantrajput2007087@gmail.com")
		So(text, ShouldContainSubstring, "1. Master of Computer Applications (MCA)")
		So(text, ShouldContainSubstring, "   - Birla Institute of Technology, Mesra, India — 2024–2026")
		So(text, ShouldContainSubstring, "Intern — CoreFinExperts Global Technologies Pvt Ltd (Jan 2024 – Apr 2024)")
		So(text, ShouldContainSubstring, "- Programming Languages: Python (90%), Java (85%), JavaScript (80%), SQL (75%)")
		So(text, ShouldContainSubstring, "- Soft Skills: Problem Solving, Leadership")
		So(text, ShouldContainSubstring, "3. CelestAI - AI-Powered Space Chatbot (The Stellar Gateway Hackathon) (2025)")
		So(text, ShouldContainSubstring, "   Tech: Python, Django, JavaScript, HTML/CSS, SQLite")
		So(text, ShouldContainSubstring, "- Effective Leadership — HP LIFE (2025)")
		So(text, ShouldEndWith, "politely redirect the conversation back to their professional background.")
		So(text, ShouldNotContainSubstring, "{{")
	})

	Convey("渲染结果稳定", t, func() {
		a, err := Default.SystemPrompt(context.Background())
		So(err, ShouldBeNil)
		b, err := Default.SystemPrompt(context.Background())
		So(err, ShouldBeNil)
		So(a, ShouldEqual, b)
	})
}

func TestLoadSystemPrompt(t *testing.T) {
	Convey("LoadSystemPrompt", t, func() {
		ctx := context.Background()

		Convey("未指定文件时使用内置提示词", func() {
			text, err := LoadSystemPrompt(ctx, Default, "")
			So(err, ShouldBeNil)
			So(text, ShouldContainSubstring, "Dikshant Rajput")
		})

		Convey("文件覆盖内置提示词", func() {
			path := filepath.Join(t.TempDir(), "prompt.txt")
			So(os.WriteFile(path, []byte("  You are a terse assistant.\n"), 0o600), ShouldBeNil)

			text, err := LoadSystemPrompt(ctx, Default, path)
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "You are a terse assistant.")
		})

		Convey("空文件报错", func() {
			path := filepath.Join(t.TempDir(), "empty.txt")
			So(os.WriteFile(path, []byte(" \n"), 0o600), ShouldBeNil)

			_, err := LoadSystemPrompt(ctx, Default, path)
			So(err, ShouldNotBeNil)
		})

		Convey("文件不存在报错", func() {
			_, err := LoadSystemPrompt(ctx, Default, filepath.Join(t.TempDir(), "missing.txt"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestListProjects(t *testing.T) {
	Convey("ListProjects", t, func() {
		all := Default.ListProjects(false)
		So(all, ShouldHaveLength, 6)

		featured := Default.ListProjects(true)
		So(featured, ShouldHaveLength, 3)
		for _, p := range featured {
			So(p.Featured, ShouldBeTrue)
		}

		Convey("返回副本，修改不影响原数据", func() {
			featured[0].Technologies[0] = "Rust"
			featured[0].Title = "changed"
			So(Default.Projects[0].Technologies[0], ShouldEqual, "Python")
			So(strings.HasPrefix(Default.Projects[0].Title, "Campus"), ShouldBeTrue)
		})
	})
}
