/*
schema defines the values exchanged between the weather provider,
the completion service and the advisor: weather records, conversation
turns, tool calls and completions.
*/
package schema
