package flowmeta

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmeta/flowmeta/model/graph"
	"github.com/flowmeta/flowmeta/model/schema"
)

const demoFlow = `<?xml version="1.0" encoding="UTF-8"?>
<Flow xmlns="http://soap.sforce.com/2006/04/metadata">
    <label>Onboarding</label>
    <start>
        <connector>
            <targetReference>Welcome</targetReference>
        </connector>
    </start>
    <screens>
        <name>Welcome</name>
        <connector>
            <targetReference>CreateContact</targetReference>
        </connector>
    </screens>
    <recordCreates>
        <name>CreateContact</name>
        <object>Contact</object>
        <faultConnector>
            <targetReference>Welcome</targetReference>
        </faultConnector>
    </recordCreates>
</Flow>
`

func TestService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	srv := New()

	flow, err := srv.Parse([]byte(demoFlow))
	require.NoError(t, err)
	assert.Equal(t, "Onboarding", flow.Label)

	nodes := graph.Nodes(flow)
	require.Len(t, nodes, 3)
	assert.Same(t, flow.Start, nodes[0])

	welcome := graph.Find(flow, "Welcome")
	require.NotNil(t, welcome)
	parents := graph.ParentNodes(flow, "Welcome")
	require.Len(t, parents, 2)

	rewritten := graph.Reparent(flow, "Welcome", "Intro")
	assert.Equal(t, 2, rewritten)
	assert.Empty(t, graph.ParentNodes(flow, "Welcome"))

	URL := "mem://localhost/e2e/Onboarding"
	require.NoError(t, srv.Save(ctx, URL, flow))
	loaded, err := srv.Load(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, "Intro", loaded.Start.Connector.TargetReference)

	out, err := srv.Stringify(loaded)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.NotContains(t, string(out), "/>")
}

func TestService_Options(t *testing.T) {
	table, err := schema.Parse([]byte("arrayFields: [decisions]\nentries: {}"))
	require.NoError(t, err)

	srv := New(WithSchema(table), WithIndent("  "))
	assert.Same(t, table, srv.Schema())

	flow, err := srv.Parse([]byte(`<Flow><decisions><name>D</name></decisions></Flow>`))
	require.NoError(t, err)
	require.Len(t, flow.Decisions, 1)

	out, err := srv.Stringify(flow)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n  <decisions>")
}

func TestService_Defaults(t *testing.T) {
	srv := New()
	assert.Same(t, schema.Default(), srv.Schema())
}
