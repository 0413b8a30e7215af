package gmbatch

// Version is the SDK version reported to MCP clients.
const Version = "0.1.0"
