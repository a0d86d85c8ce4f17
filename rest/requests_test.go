// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bureau-foundation/switchboard/lib/model/guild"
	"github.com/bureau-foundation/switchboard/lib/ref"
)

func TestCreateRoleBuild(t *testing.T) {
	t.Parallel()

	color := uint32(0xFF8800)
	hoist := true
	permissions := guild.SendMessages | guild.ViewChannel

	tests := []struct {
		name    string
		request CreateRoleRequest
		want    string
		wantErr bool
	}{
		{
			name:    "defaults",
			request: CreateRoleRequest{GuildID: ref.MustNew[ref.GuildMarker](1)},
			want:    `{}`,
		},
		{
			name: "every field",
			request: CreateRoleRequest{
				GuildID:      ref.MustNew[ref.GuildMarker](1),
				Color:        &color,
				Hoist:        &hoist,
				Icon:         "data:image/png;base64,AAAA",
				Name:         "moderators",
				Permissions:  &permissions,
				UnicodeEmoji: "🛡",
			},
			want: `{"color":16746496,"hoist":true,"icon":"data:image/png;base64,AAAA","name":"moderators","permissions":"3072","unicode_emoji":"🛡"}`,
		},
		{
			name:    "missing guild",
			request: CreateRoleRequest{Name: "x"},
			wantErr: true,
		},
		{
			name: "color out of range",
			request: CreateRoleRequest{
				GuildID: ref.MustNew[ref.GuildMarker](1),
				Color:   func() *uint32 { value := uint32(0x1000000); return &value }(),
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			built, err := test.request.Build()
			if test.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if built.Method != http.MethodPost || built.Path != "/guilds/1/roles" {
				t.Errorf("request = %s %s", built.Method, built.Path)
			}
			if string(built.Body) != test.want {
				t.Errorf("Body:\n got %s\nwant %s", built.Body, test.want)
			}
		})
	}
}

func TestCreateRole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get(AuditReasonHeader) != "new%20team" {
			t.Errorf("reason header = %q", request.Header.Get(AuditReasonHeader))
		}
		writer.Write([]byte(`{"color":0,"hoist":false,"id":"9","managed":false,"mentionable":false,"name":"team","permissions":"2048","position":3}`))
	}))
	defer server.Close()

	client := testClient(t, server)
	role, err := client.CreateRole(context.Background(), &CreateRoleRequest{
		GuildID: ref.MustNew[ref.GuildMarker](1),
		Name:    "team",
		Reason:  "new team",
	})
	if err != nil {
		t.Fatalf("CreateRole failed: %v", err)
	}
	if role.ID.Get() != 9 || role.Permissions != guild.SendMessages {
		t.Errorf("role = %+v", role)
	}
}

func TestUpdateWelcomeScreenBuild(t *testing.T) {
	t.Parallel()

	description := "welcome!"
	enabled := true
	emoji := "👋"

	request := UpdateWelcomeScreenRequest{
		GuildID:     ref.MustNew[ref.GuildMarker](1),
		Description: &description,
		Enabled:     &enabled,
		WelcomeChannels: []guild.WelcomeScreenChannel{{
			ChannelID:   ref.MustNew[ref.ChannelMarker](5),
			Description: "rules",
			EmojiName:   &emoji,
		}},
	}
	built, err := request.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := `{"description":"welcome!","enabled":true,"welcome_channels":[{"channel_id":"5","description":"rules","emoji_name":"👋"}]}`
	if built.Method != http.MethodPatch || built.Path != "/guilds/1/welcome-screen" {
		t.Errorf("request = %s %s", built.Method, built.Path)
	}
	if string(built.Body) != want {
		t.Errorf("Body:\n got %s\nwant %s", built.Body, want)
	}

	empty, err := (&UpdateWelcomeScreenRequest{GuildID: ref.MustNew[ref.GuildMarker](1)}).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if string(empty.Body) != `{}` {
		t.Errorf("empty Body = %s, want {}", empty.Body)
	}

	request.WelcomeChannels[0].ChannelID = ref.ChannelID{}
	if _, err := request.Build(); err == nil {
		t.Error("expected error for welcome channel without ID")
	}
}

func TestUpdateWelcomeScreen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"description":null,"welcome_channels":[{"channel_id":"5","description":"rules","emoji_id":"77","emoji_name":null}]}`))
	}))
	defer server.Close()

	client := testClient(t, server)
	screen, err := client.UpdateWelcomeScreen(context.Background(), &UpdateWelcomeScreenRequest{GuildID: ref.MustNew[ref.GuildMarker](1)})
	if err != nil {
		t.Fatalf("UpdateWelcomeScreen failed: %v", err)
	}
	if screen.Description != nil {
		t.Errorf("Description = %q, want nil", *screen.Description)
	}
	if len(screen.WelcomeChannels) != 1 || screen.WelcomeChannels[0].EmojiID == nil || screen.WelcomeChannels[0].EmojiID.Get() != 77 {
		t.Errorf("WelcomeChannels = %+v", screen.WelcomeChannels)
	}
}

func TestFollowNewsChannel(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost || request.URL.Path != "/channels/10/followers" {
			t.Errorf("request = %s %s", request.Method, request.URL.Path)
		}
		body, _ := io.ReadAll(request.Body)
		gotBody = string(body)
		writer.Write([]byte(`{"channel_id":"10","webhook_id":"99"}`))
	}))
	defer server.Close()

	client := testClient(t, server)
	followed, err := client.FollowNewsChannel(context.Background(), &FollowNewsChannelRequest{
		ChannelID:        ref.MustNew[ref.ChannelMarker](10),
		WebhookChannelID: ref.MustNew[ref.ChannelMarker](20),
	})
	if err != nil {
		t.Fatalf("FollowNewsChannel failed: %v", err)
	}
	if gotBody != `{"webhook_channel_id":"20"}` {
		t.Errorf("request body = %s", gotBody)
	}
	if followed.WebhookID.Get() != 99 {
		t.Errorf("WebhookID = %s, want 99", followed.WebhookID)
	}

	if _, err := (&FollowNewsChannelRequest{ChannelID: ref.MustNew[ref.ChannelMarker](10)}).Build(); err == nil {
		t.Error("expected error for missing webhook channel")
	}
}

func TestCreateTypingTrigger(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		called = true
		if request.Method != http.MethodPost || request.URL.Path != "/channels/10/typing" {
			t.Errorf("request = %s %s", request.Method, request.URL.Path)
		}
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := testClient(t, server)
	err := client.CreateTypingTrigger(context.Background(), &CreateTypingTriggerRequest{ChannelID: ref.MustNew[ref.ChannelMarker](10)})
	if err != nil {
		t.Fatalf("CreateTypingTrigger failed: %v", err)
	}
	if !called {
		t.Error("server was not called")
	}

	built, err := (&CreateTypingTriggerRequest{ChannelID: ref.MustNew[ref.ChannelMarker](10)}).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if built.Body != nil {
		t.Errorf("Body = %s, want nil", built.Body)
	}
}
