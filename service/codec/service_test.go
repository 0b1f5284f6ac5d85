package codec

import (
	"context"
	"embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmeta/flowmeta/model"
	"github.com/flowmeta/flowmeta/model/graph"
)

//go:embed testdata/*
var testFS embed.FS

func fixture(t *testing.T) []byte {
	t.Helper()
	data, err := testFS.ReadFile("testdata/subscription.flow-meta.xml")
	require.NoError(t, err)
	return data
}

func TestService_Parse(t *testing.T) {
	service := New()
	flow, err := service.Parse(fixture(t))
	require.NoError(t, err)

	assert.Equal(t, "58.0", flow.APIVersion)
	assert.Equal(t, "Subscription", flow.Label)
	assert.Equal(t, "Active", flow.Status)

	require.NotNil(t, flow.Start)
	require.NotNil(t, flow.Start.Connector)
	assert.Equal(t, "CheckPlan", flow.Start.Connector.TargetReference)

	// singleton elements arrive as one-element sequences
	require.Len(t, flow.Decisions, 1)
	decision := flow.Decisions[0]
	assert.Equal(t, "CheckPlan", decision.Name)
	require.Len(t, decision.Rules, 1)
	rule := decision.Rules[0]
	assert.Equal(t, "IsTrial", rule.Name)
	require.Len(t, rule.Conditions, 1)
	require.NotNil(t, rule.Conditions[0].RightValue)
	assert.Equal(t, "trial", rule.Conditions[0].RightValue.StringValue)
	require.NotNil(t, rule.Connector)
	assert.Equal(t, "AssignTrial", rule.Connector.TargetReference)

	require.Len(t, flow.Screens, 1)
	require.Len(t, flow.Screens[0].Fields, 1)
	assert.Equal(t, "Summary", flow.Screens[0].Fields[0].Name)

	require.Len(t, flow.Variables, 1)
	assert.Equal(t, "String", flow.Variables[0].DataType)

	// a document parsed without a location still gets a handle
	require.NotNil(t, flow.Source)
	assert.True(t, strings.HasPrefix(flow.Source.Name, "anonymous-"))
}

func TestService_Parse_Errors(t *testing.T) {
	service := New()

	_, err := service.Parse([]byte(`<Other><name>x</name></Other>`))
	assert.ErrorIs(t, err, ErrNoRootElement)

	_, err = service.Parse([]byte(`<<not xml`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRootElement)
	assert.Contains(t, err.Error(), "failed to parse flow document")
}

func TestService_Parse_EmptyRoot(t *testing.T) {
	service := New()
	flow, err := service.Parse([]byte(`<Flow></Flow>`))
	require.NoError(t, err)
	assert.Nil(t, flow.Start)
	assert.Empty(t, flow.Decisions)
	assert.Empty(t, flow.Variables)
}

func TestService_Stringify(t *testing.T) {
	service := New()
	flow, err := service.Parse(fixture(t))
	require.NoError(t, err)

	out, err := service.Stringify(flow)
	require.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, xmlHeader+"\n"), "declaration header first")
	assert.True(t, strings.HasSuffix(text, "\n"), "single trailing newline")
	assert.Contains(t, text, `<Flow xmlns="http://soap.sforce.com/2006/04/metadata"`)
	assert.NotContains(t, text, "/>", "self-closing tags are expanded")
	assert.Contains(t, text, "<targetReference>CheckPlan</targetReference>")

	// the source document is not mutated by serialization
	assert.Equal(t, "CheckPlan", flow.Decisions[0].Name)
}

func TestService_Stringify_EmptyElements(t *testing.T) {
	service := New()
	flow := &model.Flow{Screens: []*model.Screen{{}}}

	out, err := service.Stringify(flow)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<screens></screens>")
	assert.NotContains(t, string(out), "/>")
}

func TestService_Stringify_EscapesMarkup(t *testing.T) {
	service := New()
	document := `<Flow>
    <label>Cats &amp; Dogs &lt;b&gt;</label>
    <screens>
        <name>Done</name>
        <fields>
            <name>Summary</name>
            <fieldText>a &lt; b &amp;&amp; b &gt; c</fieldText>
        </fields>
    </screens>
</Flow>`
	flow, err := service.Parse([]byte(document))
	require.NoError(t, err)
	assert.Equal(t, "Cats & Dogs <b>", flow.Label)

	out, err := service.Stringify(flow)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "Cats &amp; Dogs &lt;b&gt;")
	assert.NotContains(t, text, "Cats & Dogs <b>")

	// the escaped text must reparse to the original values
	reparsed, err := service.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, flow.Label, reparsed.Label)
	require.Len(t, reparsed.Screens, 1)
	require.Len(t, reparsed.Screens[0].Fields, 1)
	assert.Equal(t, "a < b && b > c", reparsed.Screens[0].Fields[0].FieldText)
}

func TestService_Parse_SourceName(t *testing.T) {
	service := New()
	flow, err := service.Parse([]byte(`<Flow><fullName>Onboarding</fullName></Flow>`))
	require.NoError(t, err)
	require.NotNil(t, flow.Source)
	assert.Equal(t, "Onboarding", flow.Source.Name)
}

func TestService_RoundTripStability(t *testing.T) {
	service := New()
	flow, err := service.Parse(fixture(t))
	require.NoError(t, err)

	first, err := service.Stringify(flow)
	require.NoError(t, err)

	reparsed, err := service.Parse(first)
	require.NoError(t, err)
	second, err := service.Stringify(reparsed)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "canonical text must be a fixed point")
}

func TestService_LoadSave(t *testing.T) {
	ctx := context.Background()
	service := New()

	flow, err := service.Parse(fixture(t))
	require.NoError(t, err)

	URL := "mem://localhost/flows/Subscription.flow-meta.xml"
	require.NoError(t, service.Save(ctx, URL, flow))

	loaded, err := service.Load(ctx, URL)
	require.NoError(t, err)
	require.NotNil(t, loaded.Source)
	assert.Equal(t, URL, loaded.Source.URL)
	assert.Equal(t, "Subscription", loaded.Source.Name)

	// reparenting the loaded document survives a save/load cycle
	assert.Equal(t, 2, graph.Reparent(loaded, "Done", "Wrap"))
	require.NoError(t, service.Save(ctx, URL, loaded))
	again, err := service.Load(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, "Wrap", again.Decisions[0].DefaultConnector.TargetReference)
	assert.Equal(t, "Wrap", again.Assignments[0].Connector.TargetReference)
}

func TestFlowNameFromURL(t *testing.T) {
	testCases := []struct {
		url    string
		expect string
	}{
		{url: "flows/My.flow-meta.xml", expect: "My"},
		{url: "My.xml", expect: "My"},
		{url: "mem://localhost/x/Account_Update.flow-meta.xml", expect: "Account_Update"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, flowNameFromURL(tc.url), tc.url)
	}
}
